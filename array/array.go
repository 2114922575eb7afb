package array

import (
	"unsafe"

	"github.com/arraykit/arraykit/internal/check"
)

// Owner describes the allocation backend that owns an array's backing
// memory. The identity of the pointer is the ownership tag: two arrays
// share a backend if and only if their Owner pointers are equal. Go
// function values are not comparable, so the descriptor rather than
// the destroy function itself serves as the tag.
type Owner[T any] struct {
	// Name identifies the backend in diagnostics.
	Name string

	// Destroy releases length elements starting at data and frees the
	// backing store. It is invoked exactly once per allocation, by
	// whichever Array value owns it at the time.
	Destroy func(data *T, length int)
}

// Array is a fixed-capacity owning array. The zero value is an empty
// array with a nil owner and is ready to use.
type Array[T any] struct {
	data   *T
	length int
	owner  *Owner[T]
}

// New allocates a zero-initialized array of the given length on the Go
// heap, with a nil owner.
func New[T any](length int) Array[T] {
	check.Require(length >= 0, "array: negative length %d", length)
	if length == 0 {
		return Array[T]{}
	}
	s := make([]T, length)
	return Array[T]{data: &s[0], length: length}
}

// NewNoInit allocates an array of the given length without a
// guaranteed initialization policy. Go-heap allocations are always
// zeroed, so this behaves like New; it exists so call sites that
// deliberately skip initialization read as such.
func NewNoInit[T any](length int) Array[T] {
	return New[T](length)
}

// FromSlice adopts the elements of s as a fixed array with a nil
// owner. The slice must not be mutated through its original reference
// afterwards. Capacity beyond len(s) is ignored: the array is treated
// as exactly full.
func FromSlice[T any](s []T) Array[T] {
	if len(s) == 0 {
		return Array[T]{}
	}
	return Array[T]{data: &s[0], length: len(s)}
}

// NewOwned constructs an array from a raw pointer, length and owner.
// It is the Array-side half of the ownership transfer protocol used by
// allocation backends: data must have been produced by the owner's
// backend (or owner must be nil for plain Go-heap memory).
func NewOwned[T any](data *T, length int, owner *Owner[T]) Array[T] {
	check.Require(length >= 0, "array: negative length %d", length)
	check.Require(data != nil || length == 0, "array: nil data with length %d", length)
	return Array[T]{data: data, length: length, owner: owner}
}

// Data returns the pointer to the first element, or nil for an empty
// array.
func (a *Array[T]) Data() *T { return a.data }

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Owner returns the ownership descriptor, or nil for a plain Go-heap
// allocation.
func (a *Array[T]) Owner() *Owner[T] { return a.owner }

// Slice returns a view of the live elements. The view is invalidated
// by any operation that reallocates the array.
func (a *Array[T]) Slice() []T {
	if a.data == nil {
		return nil
	}
	return unsafe.Slice(a.data, a.length)
}

// Release transfers ownership of the backing memory out of the array.
// The array becomes empty; the caller is responsible for eventually
// destroying the returned allocation through the previous owner.
func (a *Array[T]) Release() (*T, int) {
	data, length := a.data, a.length
	*a = Array[T]{}
	return data, length
}

// Destroy releases the array's contents through its owner and leaves
// the array empty. For a nil owner the reference is simply dropped and
// the garbage collector reclaims the memory.
func (a *Array[T]) Destroy() {
	if a.owner != nil && a.owner.Destroy != nil {
		a.owner.Destroy(a.data, a.length)
	}
	*a = Array[T]{}
}

// Set destroys the array's current contents and takes over b. From the
// caller's point of view the replacement is atomic: no intermediate
// state is observable.
func (a *Array[T]) Set(b Array[T]) {
	if a.owner != nil && a.owner.Destroy != nil {
		a.owner.Destroy(a.data, a.length)
	}
	*a = b
}

// SetLen adjusts the live length without touching element storage. The
// new length must lie within the backing allocation's capacity; this
// is bookkeeping for the growable mutators, which track capacity
// out-of-band.
func (a *Array[T]) SetLen(n int) {
	check.Require(n >= 0, "array: negative length %d", n)
	a.length = n
}

// Reset repoints the array at a (possibly reallocated) backing store
// of the same owner without destroying anything. Used after an in-place
// or moving reallocation where the previous storage was already
// released by the backend.
func (a *Array[T]) Reset(data *T, length int) {
	check.Require(length >= 0, "array: negative length %d", length)
	a.data = data
	a.length = length
}
