package growable

import (
	"unsafe"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
	"github.com/arraykit/arraykit/array/trait"
	"github.com/arraykit/arraykit/internal/check"
	"github.com/arraykit/arraykit/internal/shadow"
)

// span builds a full-capacity view over a backend allocation.
func span[T any](data *T, n int) []T {
	if data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(data, n)
}

// at returns a pointer to the element off slots past data.
func at[T any](data *T, off int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(data), uintptr(off)*unsafe.Sizeof(zero)))
}

// destroy releases slots that fall out of the live range. Trivially
// relocatable types have no destruction side effects; for everything
// else the slots are zeroed so the collector can reclaim what they
// referenced.
func destroy[T any](s []T) {
	if len(s) != 0 && !trait.TriviallyRelocatable[T]() {
		clear(s)
	}
}

// annotate records the new live window for debug builds.
func annotate[T any](al alloc.Allocator[T], a *array.Array[T], oldLen int) {
	if shadow.Enabled {
		shadow.Annotate(unsafe.Pointer(a.Data()), Capacity(al, a), oldLen, a.Len())
	}
}

// growBy reserves room for count more elements at the end of the
// array, advances the length and returns the span of new, unconstructed
// slots. This is the single choke point where every growth-triggering
// mutator decides whether a reallocation happens.
func growBy[T any](al alloc.Allocator[T], a *array.Array[T], count int) []T {
	check.Require(count >= 0, "growable: negative count %d", count)
	oldLen := a.Len()
	if count == 0 {
		return nil
	}

	desired := oldLen + count
	if a.Owner() != al.Owner() {
		// Unknown deleter: always move-allocate to a fresh place. Not
		// using Reallocate as we don't know where the memory came
		// from.
		capacity := al.Grow(nil, desired)
		newData := al.Allocate(capacity)
		copy(span(newData, capacity)[:oldLen], a.Slice())
		a.Set(array.NewOwned(newData, oldLen, al.Owner()))
	} else if desired > al.Capacity(a.Data()) {
		capacity := al.Grow(a.Data(), desired)
		data := a.Data()
		al.Reallocate(&data, oldLen, capacity)
		a.Reset(data, oldLen)
	}

	a.SetLen(desired)
	annotate(al, a, oldLen)
	return unsafe.Slice(a.Data(), desired)[oldLen:]
}

// growAt reserves room for count elements at index, shifting the tail
// forward, and returns the span of new, unconstructed slots at
// [index, index+count).
func growAt[T any](al alloc.Allocator[T], a *array.Array[T], index, count int) []T {
	oldLen := a.Len()
	check.Require(index >= 0 && index <= oldLen,
		"growable: can't insert at index %d into an array of length %d", index, oldLen)
	check.Require(count >= 0, "growable: negative count %d", count)
	if count == 0 {
		return nil
	}

	desired := oldLen + count
	needShift := false
	if a.Owner() != al.Owner() {
		// Unknown deleter: move the parts before and after index
		// separately into a fresh allocation, leaving the gap open.
		capacity := al.Grow(nil, desired)
		newData := al.Allocate(capacity)
		ns := span(newData, capacity)
		copy(ns[:index], a.Slice()[:index])
		copy(ns[index+count:desired], a.Slice()[index:])
		a.Set(array.NewOwned(newData, oldLen, al.Owner()))
	} else {
		if desired > al.Capacity(a.Data()) {
			capacity := al.Grow(a.Data(), desired)
			data := a.Data()
			al.Reallocate(&data, oldLen, capacity)
			a.Reset(data, oldLen)
		}
		needShift = true
	}

	a.SetLen(desired)
	annotate(al, a, oldLen)
	s := unsafe.Slice(a.Data(), desired)
	if needShift {
		shiftForward(s, index, count, oldLen-index)
	}
	return s[index : index+count]
}

// shiftForward moves the tail elements at [index, index+tail) forward
// by count slots. The built-in copy is memmove-safe, so overlapping
// and non-overlapping sub-ranges need no distinct handling; what
// remains of the non-trivial two-phase dance is destroying the vacated
// gap so callers can treat it as dead storage.
func shiftForward[T any](s []T, index, count, tail int) {
	copy(s[index+count:index+count+tail], s[index:index+tail])
	destroy(s[index : index+count])
}
