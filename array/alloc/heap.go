package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/internal/check"
	"github.com/arraykit/arraykit/internal/shadow"
)

// heapBlocks holds the out-of-band capacity bookkeeping for the heap
// backend: base pointer of an allocation to the full-capacity []T
// backing it. Keeping the slice in the registry both records the
// capacity and makes ownership explicit, symmetric with the raw
// backend: a heap allocation lives until its owner destroys it.
var heapBlocks sync.Map // unsafe.Pointer -> []T (stored as any)

var heapOwners sync.Map // reflect.Type -> *array.Owner[T] (stored as any)

// HeapAllocator allocates growable storage on the Go heap, for any
// element type. The garbage collector scans element pointers, and
// destruction zeroes live slots' references by dropping the block.
type HeapAllocator[T any] struct {
	owner *array.Owner[T]
}

// Heap returns the heap backend for T.
func Heap[T any]() HeapAllocator[T] {
	var zero T
	check.Require(unsafe.Sizeof(zero) > 0, "alloc: zero-size element type %T", zero)
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := heapOwners.Load(t); ok {
		return HeapAllocator[T]{owner: v.(*array.Owner[T])}
	}
	o := &array.Owner[T]{
		Name:    fmt.Sprintf("alloc.Heap[%s]", t),
		Destroy: heapDestroy[T],
	}
	v, _ := heapOwners.LoadOrStore(t, o)
	return HeapAllocator[T]{owner: v.(*array.Owner[T])}
}

func heapDestroy[T any](data *T, length int) {
	if data == nil {
		return
	}
	p := unsafe.Pointer(data)
	_, ok := heapBlocks.LoadAndDelete(p)
	check.Require(ok, "alloc: destroying unknown heap block %p", data)
	shadow.Forget(p)
	// Dropping the registry reference releases the block; the
	// collector reclaims the elements and what they point at.
}

// Allocate returns zero-initialized storage for capacity elements, or
// nil for capacity 0.
func (HeapAllocator[T]) Allocate(capacity int) *T {
	check.Require(capacity >= 0, "alloc: negative capacity %d", capacity)
	if capacity == 0 {
		return nil
	}
	s := make([]T, capacity)
	base := &s[0]
	heapBlocks.Store(unsafe.Pointer(base), s)
	return base
}

// Reallocate always moves: fresh block, copy the preserved prefix,
// zero the vacated source slots so their references die with the old
// block's registry entry.
func (h HeapAllocator[T]) Reallocate(data **T, prevLength, newCapacity int) {
	newData := h.Allocate(newCapacity)
	n := prevLength
	if newCapacity < n {
		n = newCapacity
	}
	if n > 0 {
		copy(unsafe.Slice(newData, newCapacity)[:n], unsafe.Slice(*data, prevLength)[:n])
	}
	if *data != nil {
		clear(unsafe.Slice(*data, prevLength))
		p := unsafe.Pointer(*data)
		_, ok := heapBlocks.LoadAndDelete(p)
		check.Require(ok, "alloc: reallocating unknown heap block %p", *data)
		shadow.Forget(p)
	}
	*data = newData
}

// Deallocate releases a block whose elements the caller already
// destroyed (or never constructed).
func (HeapAllocator[T]) Deallocate(data *T) {
	if data == nil {
		return
	}
	p := unsafe.Pointer(data)
	_, ok := heapBlocks.LoadAndDelete(p)
	check.Require(ok, "alloc: deallocating unknown heap block %p", data)
	shadow.Forget(p)
}

// Grow applies the growth policy to the allocation at data, treating
// nil as capacity 0.
func (h HeapAllocator[T]) Grow(data *T, desired int) int {
	var zero T
	current := 0
	if data != nil {
		current = h.Capacity(data)
	}
	return NextCapacity(unsafe.Sizeof(zero), current, desired)
}

// Capacity returns the recorded capacity of the allocation at data.
func (HeapAllocator[T]) Capacity(data *T) int {
	if data == nil {
		return 0
	}
	v, ok := heapBlocks.Load(unsafe.Pointer(data))
	check.Require(ok, "alloc: unknown heap block %p", data)
	return len(v.([]T))
}

// Owner returns the heap backend's ownership descriptor for T.
func (h HeapAllocator[T]) Owner() *array.Owner[T] { return h.owner }
