package vec_test

import (
	"math/rand"
	"testing"

	"github.com/Iaggelis/vecor/vec"
)

// makeInts creates a Vec[int] of size n for benchmarks.
func makeInts(n int) *vec.Vec[int] {
	v := vec.Make[int](n)
	for i := range v.Data() {
		v.Data()[i] = i + 1
	}
	return v
}

func BenchmarkPushBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.Empty[int]()
		for j := 0; j < 10_000; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.Empty[int]()
		v.Reserve(10_000)
		for j := 0; j < 10_000; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Filter(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec.Map(v, func(n int) int { return n * 2 })
	}
}

func BenchmarkSort(b *testing.B) {
	v := makeInts(10_000)
	rand.Shuffle(v.Len(), func(i, j int) {
		d := v.Data()
		d[i], d[j] = d[j], d[i]
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec.Sort(v)
	}
}

func BenchmarkMinIndex(b *testing.B) {
	v := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = vec.MinIndex(v)
	}
}

func BenchmarkAtVsIndex(b *testing.B) {
	v := makeInts(10_000)

	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = v.At(i % 10_000)
		}
	})
	b.Run("Index", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.Index(i % 10_000)
		}
	})
}
