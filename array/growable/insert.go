package growable

import (
	"unsafe"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
	"github.com/arraykit/arraykit/internal/check"
)

// Insert inserts a single value at index, shifting later elements
// forward, and returns a pointer to the new slot. The value arrives by
// copy, so it may safely be an element of the array itself.
func Insert[T any](al alloc.Allocator[T], a *array.Array[T], index int, v T) *T {
	it := growAt(al, a, index, 1)
	it[0] = v
	return &it[0]
}

// InsertWith inserts a single element constructed in place by f at
// index and returns a pointer to the new slot.
func InsertWith[T any](al alloc.Allocator[T], a *array.Array[T], index int, f func() T) *T {
	it := growAt(al, a, index, 1)
	it[0] = f()
	return &it[0]
}

// InsertNNoInit inserts count unconstructed slots at index and returns
// them.
func InsertNNoInit[T any](al alloc.Allocator[T], a *array.Array[T], index, count int) []T {
	return growAt(al, a, index, count)
}

// InsertN inserts count zero-initialized slots at index and returns
// them.
func InsertN[T any](al alloc.Allocator[T], a *array.Array[T], index, count int) []T {
	out := growAt(al, a, index, count)
	clear(out)
	return out
}

// InsertNFill inserts count copies of v at index and returns the new
// slots.
func InsertNFill[T any](al alloc.Allocator[T], a *array.Array[T], index, count int, v T) []T {
	out := growAt(al, a, index, count)
	for i := range out {
		out[i] = v
	}
	return out
}

// InsertSlice inserts a copy of values at index and returns the new
// slots. A source that is a slice of the array itself is re-derived
// after growth, like AppendSlice; when inserting before the source its
// offset additionally shifts by the inserted count. The insertion
// point must not fall inside the source slice; such an insert would
// need two copy passes and the caller must split it.
func InsertSlice[T any](al alloc.Allocator[T], a *array.Array[T], index int, values []T) []T {
	count := len(values)
	off := sliceOffset(al, a, values)
	if off >= 0 {
		if index <= off {
			// The whole source sits at or after the insertion point
			// and will shift forward along with the tail.
			off += count
		} else {
			check.Require(off+count <= index,
				"growable: inserting a slice [%d:%d] into itself at index %d",
				off, off+count, index)
		}
	}

	out := growAt(al, a, index, count)
	src := values
	if off >= 0 {
		src = unsafe.Slice(at(a.Data(), off), count)
	}
	copy(out, src)
	return out
}
