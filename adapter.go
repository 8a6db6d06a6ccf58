package hexiter

// Map returns a cursor that applies f to every unit of c.
// Movement, Index and Err are those of c.
func Map[T, U any](c Cursor[T], f func(T) U) Cursor[U] {
	return &mapped[T, U]{c: c, f: f}
}

// Runes widens every byte of c to the code point with the same value (Latin-1),
// so a decoding stage can be stacked on top of another one.
func Runes(c Cursor[byte]) Cursor[rune] {
	return Map(c, func(b byte) rune { return rune(b) })
}

type mapped[T, U any] struct {
	c Cursor[T]
	f func(T) U
}

var _ Cursor[rune] = (*mapped[byte, rune])(nil)

func (m *mapped[T, U]) HasNext() bool     { return m.c.HasNext() }
func (m *mapped[T, U]) HasPrevious() bool { return m.c.HasPrevious() }
func (m *mapped[T, U]) Index() int        { return m.c.Index() }
func (m *mapped[T, U]) Err() error        { return m.c.Err() }

func (m *mapped[T, U]) Next() (U, error) {
	return m.apply(m.c.Next())
}

func (m *mapped[T, U]) PeekNext() (U, error) {
	return m.apply(m.c.PeekNext())
}

func (m *mapped[T, U]) Previous() (U, error) {
	return m.apply(m.c.Previous())
}

func (m *mapped[T, U]) PeekPrevious() (U, error) {
	return m.apply(m.c.PeekPrevious())
}

func (m *mapped[T, U]) apply(v T, err error) (U, error) {
	if err != nil {
		var zeroValue U
		return zeroValue, err
	}
	return m.f(v), nil
}

// Collect drains c forward.
func Collect[T any](c Cursor[T]) ([]T, error) {
	items := make([]T, 0)

	for c.HasNext() {
		item, err := c.Next()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// CollectReverse drains c backward, so the items come out in reverse order.
func CollectReverse[T any](c Cursor[T]) ([]T, error) {
	items := make([]T, 0, c.Index())

	for c.HasPrevious() {
		item, err := c.Previous()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
