package growable

import (
	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
	"github.com/arraykit/arraykit/internal/check"
)

// ResizeNoInit sets the array length to size, leaving any new slots
// unconstructed: raw-backend slots hold whatever the memory last held
// and must be assigned before use. All other resize flavors funnel
// through this one and construct afterwards, so a single piece of
// relocation logic serves all of them.
func ResizeNoInit[T any](al alloc.Allocator[T], a *array.Array[T], size int) {
	check.Require(size >= 0, "growable: negative size %d", size)
	oldLen := a.Len()
	if oldLen == size {
		return
	}

	if a.Owner() != al.Owner() {
		// Reallocate to exactly the requested size; move however much
		// survives the resize in either direction.
		newData := al.Allocate(size)
		n := oldLen
		if size < n {
			n = size
		}
		copy(span(newData, size)[:n], a.Slice()[:n])
		a.Set(array.NewOwned(newData, size, al.Owner()))
	} else if al.Capacity(a.Data()) < size {
		data := a.Data()
		al.Reallocate(&data, oldLen, size)
		a.Reset(data, size)
	} else {
		if size < oldLen {
			destroy(a.Slice()[size:])
		}
		a.SetLen(size)
	}
	annotate(al, a, oldLen)
}

// Resize sets the array length to size, zero-initializing any new
// slots.
func Resize[T any](al alloc.Allocator[T], a *array.Array[T], size int) {
	prev := a.Len()
	ResizeNoInit(al, a, size)
	if size > prev {
		clear(a.Slice()[prev:])
	}
}

// ResizeFill sets the array length to size, setting any new slots to
// v.
func ResizeFill[T any](al alloc.Allocator[T], a *array.Array[T], size int, v T) {
	prev := a.Len()
	ResizeNoInit(al, a, size)
	s := a.Slice()
	for i := prev; i < size; i++ {
		s[i] = v
	}
}

// ResizeWith sets the array length to size, constructing any new slots
// by calling f once per slot.
func ResizeWith[T any](al alloc.Allocator[T], a *array.Array[T], size int, f func() T) {
	prev := a.Len()
	ResizeNoInit(al, a, size)
	s := a.Slice()
	for i := prev; i < size; i++ {
		s[i] = f()
	}
}
