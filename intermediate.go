package streams

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// IndexedFunction returns the result of applying an operation to elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type IndexedFunction[T any, U any] func(index uint64, elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp Function[T, U]) ProducerFunc[U] {
	return func(sink SinkFunc[U]) bool {
		return prod(func(elem T) bool {
			return sink(mapp(elem))
		})
	}
}

// MapIndexed returns a producer that calls mapp for each element produced by prod,
// together with the element's index, mapping it to type U.
// The index counts every element prod produces, starting at 0.
func MapIndexed[T any, U any](prod ProducerFunc[T], mapp IndexedFunction[T, U]) ProducerFunc[U] {
	return func(sink SinkFunc[U]) bool {
		index := uint64(0)

		return prod(func(elem T) bool {
			outElem := mapp(index, elem)
			index++

			return sink(outElem)
		})
	}
}

// FlatMap returns a producer that calls mapp for each element produced by prod, mapping it
// to an intermediate producer that produces elements of type U.
// The new producer produces all elements produced by the intermediate producers, in order,
// draining each intermediate producer fully before visiting the next element of prod.
// If the sink stops while an intermediate producer is running, no further elements
// of prod are visited.
func FlatMap[T any, U any](prod ProducerFunc[T], mapp Function[T, ProducerFunc[U]]) ProducerFunc[U] {
	return func(sink SinkFunc[U]) bool {
		return prod(func(elem T) bool {
			return mapp(elem)(sink)
		})
	}
}

// Filter returns a producer that calls filter for each element produced by prod, and only
// produces elements for which filter returns true.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return prod(func(elem T) bool {
			if !filter(elem) {
				return true
			}

			return sink(elem)
		})
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping
// the first num elements.
func Skip[T any](prod ProducerFunc[T], num uint64) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		remaining := num

		return prod(func(elem T) bool {
			if remaining > 0 {
				remaining--
				return true
			}

			return sink(elem)
		})
	}
}

// SkipWhile returns a producer that produces the same elements as prod, in order, skipping
// elements from the start while pred returns true.
// The first element for which pred returns false, and every element after it, are
// produced without testing pred again.
func SkipWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		skipping := true

		return prod(func(elem T) bool {
			if skipping {
				if pred(elem) {
					return true
				}

				skipping = false
			}

			return sink(elem)
		})
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// Once the limit is reached, it stops prod even if the sink is still requesting elements;
// the new producer's result still reflects only what the sink requested.
func Limit[T any](prod ProducerFunc[T], max uint64) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		remaining := max
		more := true

		prod(func(elem T) bool {
			if remaining == 0 {
				return false
			}

			remaining--
			more = sink(elem)

			return more
		})

		return more
	}
}

// TakeWhile returns a producer that produces the same elements as prod, in order, while
// pred returns true.
// The first element for which pred returns false is not produced, and prod is stopped
// at that point.
func TakeWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		more := true

		prod(func(elem T) bool {
			if !pred(elem) {
				return false
			}

			more = sink(elem)

			return more
		})

		return more
	}
}

// Reverse returns a producer that consumes all elements from prod, then produces them in
// reverse order.
// Consuming prod always runs to completion; only the replay honors a stop request.
func Reverse[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		result := []T{}

		prod(func(elem T) bool {
			result = append(result, elem)
			return true
		})

		for index := len(result) - 1; index >= 0; index-- {
			if !sink(result[index]) {
				return false
			}
		}

		return true
	}
}

// Sort returns a producer that consumes all elements from prod, sorts them using less,
// and produces them in sorted order.
// Consuming prod always runs to completion; only the replay honors a stop request.
func Sort[T any](prod ProducerFunc[T], less LessFunc[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		result := []T{}

		prod(func(elem T) bool {
			result = append(result, elem)
			return true
		})

		slices.SortFunc(result, func(a T, b T) bool {
			return less(a, b)
		})

		for _, elem := range result {
			if !sink(elem) {
				return false
			}
		}

		return true
	}
}

// SortBy returns a producer like Sort, ordering elements by the keys returned by selector.
func SortBy[T any, K constraints.Ordered](prod ProducerFunc[T], selector Function[T, K]) ProducerFunc[T] {
	return Sort(prod, func(a T, b T) bool {
		return selector(a) < selector(b)
	})
}

// Peek returns a producer that calls peek for each element produced by prod, in order,
// and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek func(elem T)) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return prod(func(elem T) bool {
			peek(elem)

			return sink(elem)
		})
	}
}
