package growable

import (
	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
)

// IsGrowable reports whether the array's backing memory is owned by
// the given backend, meaning out-of-band capacity bookkeeping exists
// for it.
func IsGrowable[T any](al alloc.Allocator[T], a *array.Array[T]) bool {
	return a.Owner() == al.Owner()
}

// Capacity returns the array's effective capacity under the given
// backend: the recorded capacity when growable, otherwise the length,
// since a non-growable array is always exactly full.
func Capacity[T any](al alloc.Allocator[T], a *array.Array[T]) int {
	if a.Owner() == al.Owner() {
		return al.Capacity(a.Data())
	}
	return a.Len()
}

// Reserve ensures the array can hold at least capacity elements
// without reallocating, returning the resulting capacity. It never
// shrinks and never changes the length; when the current capacity
// already suffices it does nothing, keeping existing element addresses
// valid.
func Reserve[T any](al alloc.Allocator[T], a *array.Array[T], capacity int) int {
	growable := a.Owner() == al.Owner()
	current := Capacity(al, a)
	if current >= capacity {
		return current
	}

	oldLen := a.Len()
	if !growable {
		// Promote: allocate exactly the requested capacity, move the
		// elements across and let the replacement destroy the old
		// storage.
		newData := al.Allocate(capacity)
		copy(span(newData, capacity)[:oldLen], a.Slice())
		a.Set(array.NewOwned(newData, oldLen, al.Owner()))
	} else {
		data := a.Data()
		al.Reallocate(&data, oldLen, capacity)
		a.Reset(data, oldLen)
	}
	annotate(al, a, oldLen)
	return capacity
}

// Clear removes all elements. A growable array keeps its capacity; a
// non-growable one is replaced by an empty array, deallocating
// entirely.
func Clear[T any](al alloc.Allocator[T], a *array.Array[T]) {
	if a.Owner() != al.Owner() {
		a.Set(array.Array[T]{})
		return
	}
	oldLen := a.Len()
	destroy(a.Slice())
	a.SetLen(0)
	annotate(al, a, oldLen)
}
