package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/arraykit/arraykit/internal/mem"
)

func Test_Default_SelectsBackendByTrait(t *testing.T) {
	require.IsType(t, RawAllocator[int32]{}, Default[int32]())
	require.IsType(t, RawAllocator[[8]byte]{}, Default[[8]byte]())
	require.IsType(t, HeapAllocator[string]{}, Default[string]())
	require.IsType(t, HeapAllocator[*int]{}, Default[*int]())
}

func Test_Raw_RejectsPointerCarryingTypes(t *testing.T) {
	require.Panics(t, func() { Raw[string]() })
	require.Panics(t, func() { Raw[*int]() })
	require.Panics(t, func() { Raw[struct{ S []byte }]() })
}

func Test_Owner_IdentityIsStablePerType(t *testing.T) {
	require.Same(t, Raw[int32]().Owner(), Raw[int32]().Owner())
	require.Same(t, Heap[string]().Owner(), Heap[string]().Owner())
	// Different types and different backends get different tags.
	require.NotSame(t, Raw[int32]().Owner(), Raw[int64]().Owner())
}

func Test_Raw_AllocateStoresByteHeader(t *testing.T) {
	al := Raw[int32]()
	data := al.Allocate(4)
	defer al.Deallocate(data)

	require.Equal(t, 4, al.Capacity(data))

	// The header stores the total size in bytes, immediately before
	// the first element: 4*4 + 8.
	header := *(*uint64)(unsafe.Add(unsafe.Pointer(data), -HeaderSize))
	require.Equal(t, uint64(24), header)
}

func Test_Raw_ByteHeaderAllowsReinterpretation(t *testing.T) {
	// Because the header counts bytes, the same allocation reads back
	// the right capacity through any element type of the same total
	// size: 4 x int32 = 16 bytes = 2 x int64.
	al32 := Raw[int32]()
	data := al32.Allocate(4)
	defer al32.Deallocate(data)

	as64 := (*int64)(unsafe.Pointer(data))
	require.Equal(t, 2, Raw[int64]().Capacity(as64))
}

func Test_Raw_ReallocatePreservesLeadingElements(t *testing.T) {
	al := Raw[int32]()
	data := al.Allocate(4)
	s := unsafe.Slice(data, 4)
	copy(s, []int32{10, 20, 30, 40})

	al.Reallocate(&data, 4, 100)
	defer al.Deallocate(data)

	require.Equal(t, 100, al.Capacity(data))
	require.Equal(t, []int32{10, 20, 30, 40}, unsafe.Slice(data, 4))
}

func Test_Raw_DeallocateReturnsBlock(t *testing.T) {
	al := Raw[int32]()
	before := mem.Live()
	data := al.Allocate(8)
	require.Equal(t, before+1, mem.Live())
	al.Deallocate(data)
	require.Equal(t, before, mem.Live())
}

func Test_Raw_NilHasZeroCapacity(t *testing.T) {
	al := Raw[int32]()
	require.Equal(t, 0, al.Capacity(nil))
	require.Equal(t, 2, al.Grow(nil, 1))
}

func Test_Heap_AllocateTracksCapacity(t *testing.T) {
	al := Heap[string]()
	data := al.Allocate(5)
	defer al.Deallocate(data)
	require.Equal(t, 5, al.Capacity(data))
}

func Test_Heap_AllocateZeroReturnsNil(t *testing.T) {
	al := Heap[string]()
	require.Nil(t, al.Allocate(0))
	require.Equal(t, 0, al.Capacity(nil))
}

func Test_Heap_ReallocateMovesAndPreserves(t *testing.T) {
	al := Heap[string]()
	data := al.Allocate(2)
	s := unsafe.Slice(data, 2)
	s[0], s[1] = "a", "b"

	old := data
	al.Reallocate(&data, 2, 10)
	defer al.Deallocate(data)

	require.NotSame(t, old, data, "heap backend always relocates")
	require.Equal(t, 10, al.Capacity(data))
	require.Equal(t, []string{"a", "b"}, unsafe.Slice(data, 2))
}

func Test_Heap_CapacityOfUnknownBlockPanics(t *testing.T) {
	al := Heap[string]()
	s := make([]string, 3)
	require.Panics(t, func() { al.Capacity(&s[0]) })
}

func Test_Heap_GrowMatchesPolicy(t *testing.T) {
	al := Heap[int64]()
	data := al.Allocate(1) // 16 bytes with the nominal header
	defer al.Deallocate(data)
	require.Equal(t, 3, al.Grow(data, 2)) // doubled to 32 bytes: 3 elements
}
