package streams

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestToSlice(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Produce(someInts)), someInts)
	is.Equal(ToSlice(ProduceEmpty[int]()), []int{})
}

func TestToSet(t *testing.T) {
	is := is.New(t)

	result := ToSet(Produce(someInts))

	is.Equal(result.Values(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	is.Equal(ToSet(ProduceEmpty[string]()).Size(), 0)
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	result := ToMap(Produce([]int{1, 2, 3}), strconv.Itoa)

	is.Equal(result.Size(), 3)
	is.Equal(result.Keys(), []string{"1", "2", "3"})

	two, ok := result.Get("2")
	is.True(ok)
	is.Equal(two, 2)
}

func TestToMap_FirstKeyWins(t *testing.T) {
	is := is.New(t)

	type user struct {
		name string
		age  int
	}

	users := Produce([]user{
		{name: "alice", age: 23},
		{name: "bob", age: 29},
		{name: "alice", age: 37},
	})

	result := ToMap(users, func(elem user) string {
		return elem.name
	})

	is.Equal(result.Size(), 2)

	alice, ok := result.Get("alice")
	is.True(ok)
	is.Equal(alice.age, 23)
}
