package alloc

import (
	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/trait"
)

// Allocator is the contract both backends implement. All six
// operations deal in element counts; none of them constructs or
// inspects element values beyond relocating them.
type Allocator[T any] interface {
	// Allocate returns storage for capacity elements and records the
	// capacity out-of-band. Element values are not initialized beyond
	// what the underlying memory source provides.
	Allocate(capacity int) *T

	// Reallocate grows or shrinks an allocation previously produced by
	// this backend to newCapacity elements, preserving
	// min(prevLength, newCapacity) leading elements, and updates *data
	// to the possibly relocated base.
	Reallocate(data **T, prevLength, newCapacity int)

	// Deallocate frees an allocation without destroying any elements.
	Deallocate(data *T)

	// Grow applies the growth policy relative to the allocation's
	// current capacity; a nil data is treated as capacity 0.
	Grow(data *T, desired int) int

	// Capacity reads back the recorded capacity of an allocation.
	Capacity(data *T) int

	// Owner returns the backend's ownership descriptor for this
	// element type. Its pointer identity tags arrays owned by the
	// backend; its Destroy function destroys length elements and
	// frees the allocation.
	Owner() *array.Owner[T]
}

// Default returns the backend appropriate for T: Raw when T is
// trivially relocatable, Heap otherwise.
func Default[T any]() Allocator[T] {
	if trait.TriviallyRelocatable[T]() {
		return Raw[T]()
	}
	return Heap[T]()
}
