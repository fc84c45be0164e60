package streams

import (
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/sets/treeset"

	"golang.org/x/exp/constraints"
)

// ToSlice returns a slice of all elements produced by prod, in order.
func ToSlice[T any](prod ProducerFunc[T]) []T {
	result := []T{}

	prod(func(elem T) bool {
		result = append(result, elem)
		return true
	})

	return result
}

// ToSet returns a sorted set of all distinct elements produced by prod.
func ToSet[T constraints.Ordered](prod ProducerFunc[T]) *treeset.Set[T] {
	result := treeset.New[T]()

	prod(func(elem T) bool {
		result.Add(elem)
		return true
	})

	return result
}

// ToMap returns a sorted map of the elements produced by prod, keyed by key.
// If two elements map to the same key, the first one wins; later ones are dropped.
func ToMap[T any, K constraints.Ordered](prod ProducerFunc[T], key Function[T, K]) *treemap.Map[K, T] {
	result := treemap.New[K, T]()

	prod(func(elem T) bool {
		elemKey := key(elem)

		if _, ok := result.Get(elemKey); !ok {
			result.Put(elemKey, elem)
		}

		return true
	})

	return result
}
