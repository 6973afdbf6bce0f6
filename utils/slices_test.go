package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2, 3}))
	require.False(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2}))
	require.False(t, EqualSlice([]uint64{1, 2, 3}, []uint64{1, 2, 4}))
	require.True(t, EqualSlice([]uint64{}, nil))
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 3, Min(3, 7))
	require.Equal(t, 7, Max(3, 7))
	require.Equal(t, -1.5, Min(-1.5, 0.0))
	require.Equal(t, "b", Max("a", "b"))
}
