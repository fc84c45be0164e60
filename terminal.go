package streams

import "golang.org/x/exp/constraints"

// ConsumerFunc consumes element elem.
// Returning false stops the stream.
type ConsumerFunc[T any] func(elem T) bool

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Each calls each for each element produced by prod, forwarding each's return value
// as the continue/stop signal.
// It returns false if each requested a stop before prod was exhausted.
func Each[T any](prod ProducerFunc[T], each ConsumerFunc[T]) bool {
	return prod(SinkFunc[T](each))
}

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc,
// returning the final accumulator.
func Reduce[T any, A any](prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) A {
	prod(func(elem T) bool {
		acc = reduce(acc, elem)
		return true
	})

	return acc
}

// AnyMatch returns true as soon as pred returns true for an element produced by prod,
// that is, an element matches.
// It stops prod at the first match.
// A producer that produces no elements does not match.
func AnyMatch[T any](prod ProducerFunc[T], pred PredicateFunc[T]) bool {
	anyMatch := false

	prod(func(elem T) bool {
		anyMatch = pred(elem)
		return !anyMatch
	})

	return anyMatch
}

// AllMatch returns true if prod produces at least one element and pred returns true
// for all of them, that is, all elements match.
// It stops prod at the first element that does not match.
// A producer that produces no elements does not match.
func AllMatch[T any](prod ProducerFunc[T], pred PredicateFunc[T]) bool {
	allMatch := false

	prod(func(elem T) bool {
		allMatch = pred(elem)
		return allMatch
	})

	return allMatch
}

// First returns the first element produced by prod, stopping prod immediately after,
// or the zero value if prod produces no elements.
func First[T any](prod ProducerFunc[T]) T {
	var result T

	prod(func(elem T) bool {
		result = elem
		return false
	})

	return result
}

// Last returns the last element produced by prod, or the zero value if prod produces
// no elements.
// Every element is visited.
func Last[T any](prod ProducerFunc[T]) T {
	var result T

	prod(func(elem T) bool {
		result = elem
		return true
	})

	return result
}

// Count returns the number of elements produced by prod.
func Count[T any](prod ProducerFunc[T]) uint64 {
	count := uint64(0)

	prod(func(_ T) bool {
		count++
		return true
	})

	return count
}

// Sum returns the sum of all elements produced by prod, starting from the zero value.
func Sum[T constraints.Ordered](prod ProducerFunc[T]) T {
	var result T

	prod(func(elem T) bool {
		result += elem
		return true
	})

	return result
}

// Min returns the smallest element produced by prod, or initial if no element is
// smaller than initial.
func Min[T constraints.Ordered](prod ProducerFunc[T], initial T) T {
	result := initial

	prod(func(elem T) bool {
		if elem < result {
			result = elem
		}

		return true
	})

	return result
}

// Max returns the largest element produced by prod, or initial if no element is
// larger than initial.
func Max[T constraints.Ordered](prod ProducerFunc[T], initial T) T {
	result := initial

	prod(func(elem T) bool {
		if result < elem {
			result = elem
		}

		return true
	})

	return result
}
