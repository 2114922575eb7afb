package growable

import (
	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
	"github.com/arraykit/arraykit/internal/check"
)

// Remove removes count elements at index, preserving the order of the
// rest. A non-growable array reallocates into a growable block of the
// smaller size; a growable one shifts its tail backward and destroys
// the vacated slots.
func Remove[T any](al alloc.Allocator[T], a *array.Array[T], index, count int) {
	oldLen := a.Len()
	check.Require(index >= 0 && count >= 0 && index+count <= oldLen,
		"growable: can't remove %d elements at index %d from an array of length %d",
		count, index, oldLen)
	if count == 0 {
		return
	}

	if a.Owner() != al.Owner() {
		// Unknown deleter: reallocate to get capacity bookkeeping,
		// moving the prefix and suffix separately. The removed range
		// dies with the old storage.
		newLen := oldLen - count
		newData := al.Allocate(newLen)
		ns := span(newData, newLen)
		copy(ns[:index], a.Slice()[:index])
		copy(ns[index:], a.Slice()[index+count:])
		a.Set(array.NewOwned(newData, newLen, al.Owner()))
	} else {
		s := a.Slice()
		copy(s[index:], s[index+count:])
		destroy(s[oldLen-count:])
		a.SetLen(oldLen - count)
	}
	annotate(al, a, oldLen)
}

// RemoveUnordered removes count elements at index by moving elements
// from the very end of the array over the removed range: O(count)
// instead of O(n), at the cost of reordering elements at or after
// index.
func RemoveUnordered[T any](al alloc.Allocator[T], a *array.Array[T], index, count int) {
	oldLen := a.Len()
	check.Require(index >= 0 && count >= 0 && index+count <= oldLen,
		"growable: can't remove %d elements at index %d from an array of length %d",
		count, index, oldLen)
	if count == 0 {
		return
	}

	if a.Owner() != al.Owner() {
		newLen := oldLen - count
		newData := al.Allocate(newLen)
		ns := span(newData, newLen)
		copy(ns[:index], a.Slice()[:index])
		copy(ns[index:], a.Slice()[index+count:])
		a.Set(array.NewOwned(newData, newLen, al.Owner()))
	} else {
		moveCount := count
		if rest := oldLen - count - index; rest < moveCount {
			moveCount = rest
		}
		s := a.Slice()
		copy(s[index:index+moveCount], s[oldLen-moveCount:])
		destroy(s[oldLen-count:])
		a.SetLen(oldLen - count)
	}
	annotate(al, a, oldLen)
}

// RemoveSuffix removes the last count elements. A non-growable array
// reallocates into a growable block of the smaller size.
func RemoveSuffix[T any](al alloc.Allocator[T], a *array.Array[T], count int) {
	oldLen := a.Len()
	check.Require(count >= 0 && count <= oldLen,
		"growable: can't remove %d elements from an array of length %d", count, oldLen)
	if count == 0 {
		return
	}

	if a.Owner() != al.Owner() {
		newLen := oldLen - count
		newData := al.Allocate(newLen)
		copy(span(newData, newLen), a.Slice()[:newLen])
		a.Set(array.NewOwned(newData, newLen, al.Owner()))
	} else {
		destroy(a.Slice()[oldLen-count:])
		a.SetLen(oldLen - count)
	}
	annotate(al, a, oldLen)
}
