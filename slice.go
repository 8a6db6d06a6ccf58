package hexiter

import "fmt"

// SliceCursor is a read-only cursor over a slice.
type SliceCursor[T any] struct {
	items      []T
	descending bool
	index      int // slice index of the boundary the cursor sits on
}

var (
	_ Cursor[rune] = (*SliceCursor[rune])(nil)
	_ Marker       = (*SliceCursor[rune])(nil)
)

// NewSliceCursor creates a cursor positioned before the first item.
func NewSliceCursor[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items}
}

// NewSliceCursorAt creates a cursor positioned before items[start].
// start must be within [0, len(items)].
func NewSliceCursorAt[T any](items []T, start int) (*SliceCursor[T], error) {
	if start < 0 || start > len(items) {
		return nil, fmt.Errorf("start %d not in [0, %d]: %w", start, len(items), ErrOutOfRange)
	}

	return &SliceCursor[T]{items: items, index: start}, nil
}

// NewDescendingSliceCursor creates a cursor that walks the slice from its last item to its first.
func NewDescendingSliceCursor[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items, descending: true, index: len(items)}
}

func (it *SliceCursor[T]) HasNext() bool {
	if it.descending {
		return it.index > 0
	}
	return it.index < len(it.items)
}

func (it *SliceCursor[T]) HasPrevious() bool {
	if it.descending {
		return it.index < len(it.items)
	}
	return it.index > 0
}

func (it *SliceCursor[T]) Next() (T, error) {
	var zeroValue T

	if !it.HasNext() {
		return zeroValue, ErrNoSuchElement
	}

	if it.descending {
		it.index--
		return it.items[it.index], nil
	}

	it.index++
	return it.items[it.index-1], nil
}

func (it *SliceCursor[T]) PeekNext() (T, error) {
	var zeroValue T

	if !it.HasNext() {
		return zeroValue, ErrNoSuchElement
	}

	if it.descending {
		return it.items[it.index-1], nil
	}
	return it.items[it.index], nil
}

func (it *SliceCursor[T]) Previous() (T, error) {
	var zeroValue T

	if !it.HasPrevious() {
		return zeroValue, ErrNoSuchElement
	}

	if it.descending {
		it.index++
		return it.items[it.index-1], nil
	}

	it.index--
	return it.items[it.index], nil
}

func (it *SliceCursor[T]) PeekPrevious() (T, error) {
	var zeroValue T

	if !it.HasPrevious() {
		return zeroValue, ErrNoSuchElement
	}

	if it.descending {
		return it.items[it.index], nil
	}
	return it.items[it.index-1], nil
}

// Index returns the number of items consumed in the cursor's direction.
func (it *SliceCursor[T]) Index() int {
	if it.descending {
		return len(it.items) - it.index
	}
	return it.index
}

// NextIndex returns the slice index of the item Next would return.
// It is len(items) at the end of an ascending cursor and -1 at the end of a descending one.
func (it *SliceCursor[T]) NextIndex() int {
	if it.descending {
		return it.index - 1
	}
	return it.index
}

// PreviousIndex returns the slice index of the item Previous would return.
// It is -1 at the start of an ascending cursor and len(items) at the start of a descending one.
func (it *SliceCursor[T]) PreviousIndex() int {
	if it.descending {
		return it.index
	}
	return it.index - 1
}

// Err exists for Cursor interface compatibility.
func (it *SliceCursor[T]) Err() error {
	return nil
}

func (it *SliceCursor[T]) Mark() Mark {
	return NewMark(it.index, it.index)
}

func (it *SliceCursor[T]) Reset(m Mark) {
	it.index = m.index
}

// Add is unsupported.
func (it *SliceCursor[T]) Add(T) error {
	return ErrUnsupportedOperation
}

// Set is unsupported.
func (it *SliceCursor[T]) Set(T) error {
	return ErrUnsupportedOperation
}

// Remove is unsupported.
func (it *SliceCursor[T]) Remove() error {
	return ErrUnsupportedOperation
}
