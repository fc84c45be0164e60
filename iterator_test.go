package streams

import (
	"testing"

	"github.com/matryer/is"
)

type sliceIterator[T any] struct {
	elems []T
	pos   int
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos >= len(it.elems) {
		return false
	}

	it.pos++

	return true
}

func (it *sliceIterator[T]) Value() T {
	return it.elems[it.pos-1]
}

func TestProduceIterator(t *testing.T) {
	is := is.New(t)

	iter := &sliceIterator[int]{elems: []int{1, 2, 3, 4, 5}}

	is.Equal(ToSlice(ProduceIterator[int](iter)), []int{1, 2, 3, 4, 5})
}

func TestProduceIterator_Stop(t *testing.T) {
	is := is.New(t)

	iter := &sliceIterator[int]{elems: []int{1, 2, 3, 4, 5}}

	is.Equal(ToSlice(Limit(ProduceIterator[int](iter), 2)), []int{1, 2})

	// the iterator is advanced only as far as the sink requested, plus the
	// element the limit discarded
	is.Equal(iter.pos, 3)
}
