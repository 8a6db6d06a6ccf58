package hexiter

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSliceCursor(t *testing.T) {
	it := NewSliceCursor([]int{1, 2, 3})

	require.False(t, it.HasPrevious())
	_, err := it.Previous()
	require.ErrorIs(t, err, ErrNoSuchElement)

	v, err := it.PeekNext()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 0, it.Index())

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, 2, it.Index())

	v, err = it.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, 1, it.Index())

	all, err := Collect[int](it)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, all)

	_, err = it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
	require.NoError(t, it.Err())
}

func TestSliceCursorDescending(t *testing.T) {
	it := NewDescendingSliceCursor([]int{1, 2, 3})

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, 2, it.Index())

	v, err = it.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = it.Previous()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = it.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	rest, err := Collect[int](it)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, rest)
	require.False(t, it.HasNext())
}

func TestSliceCursorAt(t *testing.T) {
	items := []rune("abc")

	_, err := NewSliceCursorAt(items, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewSliceCursorAt(items, 4)
	require.ErrorIs(t, err, ErrOutOfRange)

	it, err := NewSliceCursorAt(items, 3)
	require.NoError(t, err)
	require.False(t, it.HasNext())

	it, err = NewSliceCursorAt(items, 1)
	require.NoError(t, err)
	require.Equal(t, 1, it.Index())

	r, err := it.PeekNext()
	require.NoError(t, err)
	require.Equal(t, 'b', r)

	r, err = it.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
}

func TestSliceCursorUnsupported(t *testing.T) {
	it := NewSliceCursor([]string{"a"})

	require.ErrorIs(t, it.Add("b"), ErrUnsupportedOperation)
	require.ErrorIs(t, it.Set("b"), ErrUnsupportedOperation)
	require.ErrorIs(t, it.Remove(), ErrUnsupportedOperation)

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", v)
}

func TestSliceCursorNextPreviousIndex(t *testing.T) {
	it := NewSliceCursor([]int{1, 2, 3})
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, -1, it.PreviousIndex())

	_, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, it.NextIndex())
	require.Equal(t, 0, it.PreviousIndex())

	_, err = Collect[int](it)
	require.NoError(t, err)
	require.Equal(t, 3, it.NextIndex())
	require.Equal(t, 2, it.PreviousIndex())

	desc := NewDescendingSliceCursor([]int{1, 2, 3})
	require.Equal(t, 2, desc.NextIndex())
	require.Equal(t, 3, desc.PreviousIndex())

	v, err := desc.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, 1, desc.NextIndex())
	require.Equal(t, 2, desc.PreviousIndex())

	_, err = Collect[int](desc)
	require.NoError(t, err)
	require.Equal(t, -1, desc.NextIndex())
	require.Equal(t, 0, desc.PreviousIndex())

	v, err = desc.Previous()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 0, desc.NextIndex())
}

func TestStringCursor(t *testing.T) {
	c := NewStringCursor("héllo")

	runes, err := Collect[rune](c)
	require.NoError(t, err)
	require.Equal(t, []rune("héllo"), runes)
	require.Equal(t, 5, c.Index())

	r, err := c.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, 'o', r)

	back, err := CollectReverse[rune](c)
	require.NoError(t, err)
	require.Equal(t, []rune("olléh"), back)
	require.Equal(t, 0, c.Index())

	_, err = c.Previous()
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = c.PeekPrevious()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestStringCursorMark(t *testing.T) {
	c := NewStringCursor("añb")

	_, err := c.Next()
	require.NoError(t, err)
	m := c.Mark()

	r, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 'ñ', r)
	_, err = c.Next()
	require.NoError(t, err)
	require.False(t, c.HasNext())

	c.Reset(m)
	require.Equal(t, 1, c.Index())

	r, err = c.PeekNext()
	require.NoError(t, err)
	require.Equal(t, 'ñ', r)
}

func TestStringCursorInvalidUTF8(t *testing.T) {
	runes, err := Collect[rune](NewStringCursor("a\xffb"))
	require.NoError(t, err)
	require.Equal(t, []rune{'a', utf8.RuneError, 'b'}, runes)
}

func TestEmpty(t *testing.T) {
	c := Empty[byte]()

	require.False(t, c.HasNext())
	require.False(t, c.HasPrevious())
	require.Equal(t, 0, c.Index())
	require.NoError(t, c.Err())

	_, err := c.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = c.PeekNext()
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = c.Previous()
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = c.PeekPrevious()
	require.ErrorIs(t, err, ErrNoSuchElement)

	d := NewBase16Decoder(Map(Empty[byte](), func(b byte) rune { return rune(b) }))
	require.False(t, d.HasNext())
	require.NoError(t, d.Err())
}

func TestMap(t *testing.T) {
	c := Map[int, string](NewSliceCursor([]int{1, 2}), func(i int) string {
		return string(rune('a' + i - 1))
	})

	v, err := c.PeekNext()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	all, err := Collect[string](c)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, all)
	require.Equal(t, 2, c.Index())

	v, err = c.PeekPrevious()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = c.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}
