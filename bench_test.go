package streams

import "testing"

var benchSink int

func BenchmarkFilterMapSum(b *testing.B) {
	ints := make([]int, 1024)
	for i := range ints {
		ints[i] = i
	}

	prod := Map(Filter(Produce(ints), func(elem int) bool {
		return elem%2 == 0
	}), func(elem int) int {
		return elem + 1
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSink = Sum(prod)
	}
}

func BenchmarkFlatMapLimit(b *testing.B) {
	outer := make([][]int, 64)
	for i := range outer {
		outer[i] = []int{i, i + 1, i + 2, i + 3}
	}

	prod := Limit(FlatMap(Produce(outer), func(elems []int) ProducerFunc[int] {
		return Produce(elems)
	}), 128)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSink = int(Count(prod))
	}
}

func BenchmarkSort(b *testing.B) {
	ints := make([]int, 1024)
	for i := range ints {
		ints[i] = (i * 7919) % 1024
	}

	prod := Sort(Produce(ints), func(l int, r int) bool {
		return l < r
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSink = Last(prod)
	}
}
