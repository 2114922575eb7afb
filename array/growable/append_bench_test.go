package growable

import (
	"testing"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
)

// Prevent compiler from optimizing away benchmark results.
//
//nolint:unused // Benchmark sink variables - intentionally write-only
var (
	benchInt32 int32
	benchSlice []int32
)

var benchmarkSizes = []struct {
	name  string
	count int
}{
	{"1k", 1_000},
	{"100k", 100_000},
	{"1M", 1_000_000},
}

// BenchmarkAppend_Raw measures element-at-a-time growth on the raw
// backend, reallocations included.
func BenchmarkAppend_Raw(b *testing.B) {
	al := alloc.Raw[int32]()
	for _, tc := range benchmarkSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a := array.Array[int32]{}
				for i := 0; i < tc.count; i++ {
					Append(al, &a, int32(i))
				}
				benchInt32 = a.Slice()[tc.count-1]
				a.Destroy()
			}
		})
	}
}

// BenchmarkAppend_Heap measures the same growth on the go-heap
// backend.
func BenchmarkAppend_Heap(b *testing.B) {
	al := alloc.Heap[int32]()
	for _, tc := range benchmarkSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a := array.Array[int32]{}
				for i := 0; i < tc.count; i++ {
					Append(al, &a, int32(i))
				}
				benchInt32 = a.Slice()[tc.count-1]
				a.Destroy()
			}
		})
	}
}

// BenchmarkAppend_Reserved measures appends into preallocated
// capacity, isolating the per-element cost from reallocation.
func BenchmarkAppend_Reserved(b *testing.B) {
	al := alloc.Raw[int32]()
	for _, tc := range benchmarkSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a := array.Array[int32]{}
				Reserve(al, &a, tc.count)
				for i := 0; i < tc.count; i++ {
					Append(al, &a, int32(i))
				}
				benchInt32 = a.Slice()[tc.count-1]
				a.Destroy()
			}
		})
	}
}

// BenchmarkAppend_GoSlice is the built-in append baseline for the same
// workload.
func BenchmarkAppend_GoSlice(b *testing.B) {
	for _, tc := range benchmarkSizes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var s []int32
				for i := 0; i < tc.count; i++ {
					s = append(s, int32(i))
				}
				benchSlice = s
			}
		})
	}
}
