package streams

import "golang.org/x/exp/constraints"

// SinkFunc consumes a single element pushed by a producer.
// Returning true requests more elements; returning false stops the producer,
// which must not call the sink again.
type SinkFunc[T any] func(elem T) bool

// ProducerFunc pushes elements into sink, in order, until its elements are
// exhausted or sink returns false.
// It returns the last value returned by sink, or true if sink was never called.
// The return value is how nested producers propagate a downstream stop request
// to an outer drive loop.
type ProducerFunc[T any] func(sink SinkFunc[T]) bool

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for _, slice := range slices {
			for _, elem := range slice {
				if !sink(elem) {
					return false
				}
			}
		}

		return true
	}
}

// ProduceValues returns a producer that produces the given elements, in order.
func ProduceValues[T any](elems ...T) ProducerFunc[T] {
	return Produce(elems)
}

// ProduceRange returns a producer that produces the integers from low (inclusive)
// up to high (exclusive), in ascending order.
// It produces no elements if low >= high.
func ProduceRange[T constraints.Integer](low T, high T) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for elem := low; elem < high; elem++ {
			if !sink(elem) {
				return false
			}
		}

		return true
	}
}

// ProduceRepeat returns a producer that produces elem count times.
func ProduceRepeat[T any](elem T, count uint64) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for done := uint64(0); done < count; done++ {
			if !sink(elem) {
				return false
			}
		}

		return true
	}
}

// ProduceSingleton returns a producer that produces elem exactly once.
func ProduceSingleton[T any](elem T) ProducerFunc[T] {
	return ProduceRepeat(elem, 1)
}

// ProduceEmpty returns a producer that produces no elements.
func ProduceEmpty[T any]() ProducerFunc[T] {
	return func(_ SinkFunc[T]) bool {
		return true
	}
}

// Join returns a producer that produces the elements produced by the given producers, in order.
// A stop requested while an earlier producer is running prevents the later
// producers from running at all.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for _, prod := range producers {
			if !prod(sink) {
				return false
			}
		}

		return true
	}
}
