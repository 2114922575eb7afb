package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/trait"
	"github.com/arraykit/arraykit/internal/check"
	"github.com/arraykit/arraykit/internal/mem"
	"github.com/arraykit/arraykit/internal/shadow"
)

var rawOwners sync.Map // reflect.Type -> *array.Owner[T] (stored as any)

// RawAllocator allocates growable storage off the Go heap, for
// trivially relocatable element types only. The total allocation size
// in bytes, header included, is stored in an 8-byte header immediately
// before the first element; storing bytes rather than elements lets a
// raw allocation be reinterpreted between element types of the same
// total size.
type RawAllocator[T any] struct {
	owner *array.Owner[T]
}

// Raw returns the raw backend for T. T must be trivially relocatable:
// element storage is invisible to the garbage collector, so types
// carrying Go pointers cannot live in it.
func Raw[T any]() RawAllocator[T] {
	var zero T
	check.Require(unsafe.Sizeof(zero) > 0, "alloc: zero-size element type %T", zero)
	check.Require(trait.TriviallyRelocatable[T](),
		"alloc: %T carries Go pointers and can't use the raw backend", zero)
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := rawOwners.Load(t); ok {
		return RawAllocator[T]{owner: v.(*array.Owner[T])}
	}
	o := &array.Owner[T]{
		Name:    fmt.Sprintf("alloc.Raw[%s]", t),
		Destroy: rawDestroy[T],
	}
	v, _ := rawOwners.LoadOrStore(t, o)
	return RawAllocator[T]{owner: v.(*array.Owner[T])}
}

// rawDestroy frees the allocation. Trivially relocatable elements have
// no destruction side effects, so the length is irrelevant.
func rawDestroy[T any](data *T, _ int) {
	if data == nil {
		return
	}
	shadow.Forget(unsafe.Pointer(data))
	mem.Free(rawBase(data))
}

func rawBase[T any](data *T) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(data), -HeaderSize)
}

func rawStored(base unsafe.Pointer, inBytes int) {
	*(*uint64)(base) = uint64(inBytes)
}

// Allocate returns storage for capacity elements with the total byte
// size written into the header. The element contents are
// uninitialized.
func (RawAllocator[T]) Allocate(capacity int) *T {
	check.Require(capacity >= 0, "alloc: negative capacity %d", capacity)
	var zero T
	inBytes := capacity*int(unsafe.Sizeof(zero)) + HeaderSize
	base := mem.Alloc(inBytes)
	rawStored(base, inBytes)
	return (*T)(unsafe.Add(base, HeaderSize))
}

// Reallocate grows or shrinks the allocation at *data. The underlying
// block keeps its full previous contents across the move, so the
// preserved prefix needs no separate copy; only the header is
// rewritten.
func (r RawAllocator[T]) Reallocate(data **T, prevLength, newCapacity int) {
	if *data == nil {
		*data = r.Allocate(newCapacity)
		return
	}
	var zero T
	inBytes := newCapacity*int(unsafe.Sizeof(zero)) + HeaderSize
	oldBase := rawBase(*data)
	base := mem.Grow(oldBase, inBytes)
	if base != oldBase {
		shadow.Forget(unsafe.Pointer(*data))
	}
	rawStored(base, inBytes)
	*data = (*T)(unsafe.Add(base, HeaderSize))
}

// Deallocate frees the block without touching element contents.
func (RawAllocator[T]) Deallocate(data *T) {
	if data == nil {
		return
	}
	shadow.Forget(unsafe.Pointer(data))
	mem.Free(rawBase(data))
}

// Grow applies the growth policy to the allocation at data, treating
// nil as capacity 0.
func (r RawAllocator[T]) Grow(data *T, desired int) int {
	var zero T
	current := 0
	if data != nil {
		current = r.Capacity(data)
	}
	return NextCapacity(unsafe.Sizeof(zero), current, desired)
}

// Capacity converts the stored byte size back to an element count.
func (RawAllocator[T]) Capacity(data *T) int {
	if data == nil {
		return 0
	}
	var zero T
	stored := int(*(*uint64)(rawBase(data)))
	return (stored - HeaderSize) / int(unsafe.Sizeof(zero))
}

// Owner returns the raw backend's ownership descriptor for T.
func (r RawAllocator[T]) Owner() *array.Owner[T] { return r.owner }
