package growable

import (
	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
)

// Shrink converts a growable array back to an exact-size plain
// allocation with a nil owner, discarding the growable block and its
// capacity header through the old owner's destructor. A non-growable
// array is assumed to be as small as possible already and is left
// untouched, making this the one operation after which no out-of-band
// bookkeeping remains. The replacement block is value-initialized
// before the elements move in.
func Shrink[T any](al alloc.Allocator[T], a *array.Array[T]) {
	shrink(al, a, array.New[T])
}

// ShrinkNoInit is Shrink with a no-init replacement block. On Go-heap
// memory the two policies are observably identical (allocation always
// zeroes); the spelling exists for symmetry with the resize family.
func ShrinkNoInit[T any](al alloc.Allocator[T], a *array.Array[T]) {
	shrink(al, a, array.NewNoInit[T])
}

func shrink[T any](al alloc.Allocator[T], a *array.Array[T], newArray func(int) array.Array[T]) {
	if a.Owner() != al.Owner() {
		return
	}
	// Even when length equals capacity, reallocating to a plain array
	// with a nil owner avoids surprises for callers that can't handle
	// custom ownership.
	repl := newArray(a.Len())
	copy(repl.Slice(), a.Slice())
	a.Set(repl)
}
