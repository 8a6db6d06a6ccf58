package arrays

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionEqual(t *testing.T) {
	a := []byte("hello world")
	b := []byte("world")

	require.True(t, RegionEqual(a, 6, b, 0, 5))
	require.True(t, RegionEqual(a, 0, b, 0, 0))
	require.False(t, RegionEqual(a, 5, b, 0, 5))
	require.False(t, RegionEqual(a, 7, b, 0, 5))
	require.False(t, RegionEqual(a, -1, b, 0, 1))
	require.False(t, RegionEqual(a, 0, b, 3, 3))

	require.True(t, HasPrefixAt(a, 6, b))
	require.False(t, HasPrefixAt(a, 0, b))

	require.True(t, RegionEqualString([]rune("añb"), 1, "xñb", 1, 2))
	require.False(t, RegionEqualString([]rune("añb"), 0, "xñb", 0, 3))
}

func TestHexString(t *testing.T) {
	require.Equal(t, "", HexString(nil))
	require.Equal(t, "00ff10a0", HexString([]byte{0x00, 0xff, 0x10, 0xa0}))
}

func TestIndexOf(t *testing.T) {
	s := []byte{1, 2, 3, 2}

	require.Equal(t, 1, IndexOf(s, 2, 0, len(s)))
	require.Equal(t, 3, IndexOf(s, 2, 2, len(s)-2))
	require.Equal(t, -1, IndexOf(s, 4, 0, len(s)))
	require.Equal(t, -1, IndexOf(s, 2, 2, 1))
	require.Equal(t, -1, IndexOf(s, 1, int64(2), int64(5)))
}

func TestCompactZero(t *testing.T) {
	s := []string{"a", "b"}
	require.Equal(t, s, CompactZero(s))

	s = []string{"a", "", "b", "", "c"}
	require.Equal(t, []string{"a", "b", "c"}, CompactZero(s))

	require.Empty(t, CompactZero([]*int{nil, nil}))
	require.Empty(t, CompactZero([]int{}))
}

func TestOf(t *testing.T) {
	require.Equal(t, []int{1, 2}, Of(1, 2))
	require.Empty(t, Of[int]())
}
