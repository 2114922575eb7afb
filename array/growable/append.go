package growable

import (
	"unsafe"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
)

// sliceOffset returns the element offset of values' base inside the
// array's current capacity window, or -1 when values is foreign
// memory. Computing the offset before any growth and re-deriving the
// address from the new base afterwards is what keeps self-aliasing
// sources valid across a reallocation; a raw pointer must never be
// carried across a call that may reallocate.
func sliceOffset[T any](al alloc.Allocator[T], a *array.Array[T], values []T) int {
	if len(values) == 0 || a.Data() == nil {
		return -1
	}
	var zero T
	size := unsafe.Sizeof(zero)
	base := uintptr(unsafe.Pointer(a.Data()))
	vp := uintptr(unsafe.Pointer(&values[0]))
	diff := vp - base // wraps to a huge value when vp < base
	if diff%size != 0 {
		return -1
	}
	off := diff / size
	if off >= uintptr(Capacity(al, a)) {
		return -1
	}
	return int(off)
}

// Append appends a single value and returns a pointer to the new slot.
// The value arrives by copy, so it may safely be an element of the
// array itself.
func Append[T any](al alloc.Allocator[T], a *array.Array[T], v T) *T {
	it := growBy(al, a, 1)
	it[0] = v
	return &it[0]
}

// AppendWith appends a single element constructed in place by f and
// returns a pointer to the new slot.
func AppendWith[T any](al alloc.Allocator[T], a *array.Array[T], f func() T) *T {
	it := growBy(al, a, 1)
	it[0] = f()
	return &it[0]
}

// AppendNNoInit appends count unconstructed slots and returns them.
// Raw-backend slots hold whatever the memory last held.
func AppendNNoInit[T any](al alloc.Allocator[T], a *array.Array[T], count int) []T {
	return growBy(al, a, count)
}

// AppendN appends count zero-initialized slots and returns them.
func AppendN[T any](al alloc.Allocator[T], a *array.Array[T], count int) []T {
	out := growBy(al, a, count)
	clear(out)
	return out
}

// AppendNFill appends count copies of v and returns the new slots.
func AppendNFill[T any](al alloc.Allocator[T], a *array.Array[T], count int, v T) []T {
	out := growBy(al, a, count)
	for i := range out {
		out[i] = v
	}
	return out
}

// AppendSlice appends a copy of values and returns the new slots. If
// values is a slice of the array itself (anywhere inside its current
// capacity window), the source is re-derived after growth, so the copy
// reads from the relocated elements rather than from freed memory. A
// source outside the window is used as given; overlap with unrelated
// memory is the caller's responsibility.
func AppendSlice[T any](al alloc.Allocator[T], a *array.Array[T], values []T) []T {
	count := len(values)
	off := sliceOffset(al, a, values)

	out := growBy(al, a, count)
	src := values
	if off >= 0 {
		src = unsafe.Slice(at(a.Data(), off), count)
	}
	copy(out, src)
	return out
}
