package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New_ZeroInitializes(t *testing.T) {
	a := New[int32](4)
	require.Equal(t, 4, a.Len())
	require.NotNil(t, a.Data())
	require.Nil(t, a.Owner())
	require.Equal(t, []int32{0, 0, 0, 0}, a.Slice())
}

func Test_New_EmptyHasNilData(t *testing.T) {
	a := New[int32](0)
	require.Equal(t, 0, a.Len())
	require.Nil(t, a.Data())
	require.Nil(t, a.Slice())
}

func Test_FromSlice_AdoptsElements(t *testing.T) {
	s := []string{"x", "y", "z"}
	a := FromSlice(s)
	require.Equal(t, 3, a.Len())
	require.Equal(t, &s[0], a.Data())
	require.Equal(t, []string{"x", "y", "z"}, a.Slice())
}

func Test_Release_TransfersOwnershipOut(t *testing.T) {
	a := New[int32](3)
	a.Slice()[1] = 7
	data, length := a.Release()
	require.Equal(t, 3, length)
	require.NotNil(t, data)
	require.Equal(t, 0, a.Len())
	require.Nil(t, a.Data())
}

func Test_Destroy_InvokesOwnerExactlyOnce(t *testing.T) {
	calls := 0
	owner := &Owner[int32]{
		Name: "test",
		Destroy: func(data *int32, length int) {
			calls++
			require.Equal(t, 2, length)
		},
	}
	s := []int32{1, 2}
	a := NewOwned(&s[0], 2, owner)
	require.Same(t, owner, a.Owner())

	a.Destroy()
	require.Equal(t, 1, calls)
	require.Equal(t, 0, a.Len())

	// The array is empty now; destroying again must not call the old
	// owner.
	a.Destroy()
	require.Equal(t, 1, calls)
}

func Test_Set_DestroysPreviousContents(t *testing.T) {
	calls := 0
	owner := &Owner[int32]{Destroy: func(*int32, int) { calls++ }}
	s := []int32{1, 2}
	a := NewOwned(&s[0], 2, owner)

	a.Set(New[int32](1))
	require.Equal(t, 1, calls)
	require.Nil(t, a.Owner())
	require.Equal(t, 1, a.Len())
}

func Test_SetLen_RejectsNegative(t *testing.T) {
	a := New[int32](2)
	require.Panics(t, func() { a.SetLen(-1) })
}

func Test_NewOwned_RejectsNilDataWithLength(t *testing.T) {
	require.Panics(t, func() { NewOwned[int32](nil, 3, nil) })
}
