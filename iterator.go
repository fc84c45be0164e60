package streams

// Iterator provides pull-based iteration over a sequence of elements.
type Iterator[T any] interface {
	// Next advances the iterator to the next element.
	// Returns true if an element is available, false if iteration is complete.
	Next() bool

	// Value returns the current element.
	// Only valid after Next() returns true.
	Value() T
}

// ProduceIterator returns a producer that produces the elements of it, in order.
// The iterator is advanced only as far as the sink requests elements.
// Unlike the other producers, the result is not restartable: iterators are
// one-shot, so running the producer again continues wherever the previous run
// left the iterator.
func ProduceIterator[T any](it Iterator[T]) ProducerFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for it.Next() {
			if !sink(it.Value()) {
				return false
			}
		}

		return true
	}
}
