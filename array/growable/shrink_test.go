package growable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arraykit/arraykit/array"
	"github.com/arraykit/arraykit/array/alloc"
)

func Test_Shrink_ProducesExactSizePlainArray(t *testing.T) {
	al := alloc.Raw[int32]()
	a := array.Array[int32]{}
	defer a.Destroy()
	Reserve(al, &a, 16)
	AppendSlice(al, &a, []int32{1, 2, 3, 4, 5})

	Shrink(al, &a)
	require.Nil(t, a.Owner())
	require.False(t, IsGrowable(al, &a))
	require.Equal(t, 5, Capacity(al, &a))
	require.Equal(t, []int32{1, 2, 3, 4, 5}, a.Slice())
}

func Test_Shrink_LeavesForeignArraysAlone(t *testing.T) {
	al := alloc.Heap[string]()
	a := array.FromSlice([]string{"a", "b"})
	data := a.Data()

	Shrink(al, &a)
	require.Equal(t, data, a.Data())
	require.Equal(t, []string{"a", "b"}, a.Slice())
}

func Test_Shrink_ReplacesEvenAnExactlyFullBlock(t *testing.T) {
	al := alloc.Raw[int32]()
	a := array.Array[int32]{}
	defer a.Destroy()
	Reserve(al, &a, 3)
	AppendSlice(al, &a, []int32{1, 2, 3})

	data := a.Data()
	Shrink(al, &a)
	require.NotSame(t, data, a.Data())
	require.Nil(t, a.Owner())
	require.Equal(t, []int32{1, 2, 3}, a.Slice())
}

func Test_ShrinkNoInit_MatchesShrinkObservably(t *testing.T) {
	al := alloc.Heap[string]()
	a := array.Array[string]{}
	defer a.Destroy()
	AppendSlice(al, &a, []string{"x", "y", "z"})
	RemoveSuffix(al, &a, 1)

	ShrinkNoInit(al, &a)
	require.Nil(t, a.Owner())
	require.Equal(t, 2, Capacity(al, &a))
	require.Equal(t, []string{"x", "y"}, a.Slice())
}

func Test_Shrink_EmptyGrowableBecomesEmptyPlain(t *testing.T) {
	al := alloc.Raw[int32]()
	a := array.Array[int32]{}
	Reserve(al, &a, 8)

	Shrink(al, &a)
	require.Nil(t, a.Owner())
	require.Equal(t, 0, a.Len())
	require.Nil(t, a.Data())
}
