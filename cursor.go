// Package hexiter provides bidirectional cursors that lazily decode text into bytes.
package hexiter

// Cursor is a lazy position between two units of a finite sequence.
// It can be moved in both directions and peeked without being moved.
//
// Usage:
//
//	for c.HasNext() {
//	    b, err := c.Next()
//	    // handle b
//	}
//	if err := c.Err(); err != nil {
//	    // malformed input
//	}
//
// A Cursor is not safe for concurrent use, peeking included.
type Cursor[T any] interface {
	// HasNext reports whether a unit is available moving forward.
	// Returns false both when exhausted and when the cursor failed;
	// use Err() to distinguish the two.
	HasNext() bool

	// Next returns the next unit and advances Index by one.
	// Returns ErrNoSuchElement when exhausted.
	Next() (T, error)

	// PeekNext returns what Next would return without advancing.
	PeekNext() (T, error)

	// HasPrevious reports whether a unit is available moving backward.
	HasPrevious() bool

	// Previous returns the previous unit and moves Index back by one.
	// Returns ErrNoSuchElement at the start.
	Previous() (T, error)

	// PeekPrevious returns what Previous would return without moving.
	PeekPrevious() (T, error)

	// Index returns the number of units before the cursor,
	// counted in the cursor's own unit space.
	Index() int

	// Err returns the error that stopped the cursor, or nil.
	Err() error
}

// Mark is a saved cursor position. It is only meaningful to the cursor that made it.
type Mark struct {
	index  int
	offset int
}

// NewMark creates a mark for a cursor at index, with offset being whatever
// the cursor needs to seek back there, such as a byte or file offset.
func NewMark(index, offset int) Mark {
	return Mark{index: index, offset: offset}
}

// Index returns the cursor index the mark was taken at.
func (m Mark) Index() int {
	return m.index
}

// Offset returns the cursor specific position of the mark.
func (m Mark) Offset() int {
	return m.offset
}

// Marker is implemented by cursors that can save and restore their position in O(1).
// Cursors outside this package build their marks with NewMark.
type Marker interface {
	Mark() Mark
	Reset(m Mark)
}

// Empty returns a cursor with nothing in either direction.
func Empty[T any]() Cursor[T] {
	return empty[T]{}
}

type empty[T any] struct{}

var _ Cursor[byte] = empty[byte]{}

func (empty[T]) HasNext() bool     { return false }
func (empty[T]) HasPrevious() bool { return false }
func (empty[T]) Index() int        { return 0 }
func (empty[T]) Err() error        { return nil }

func (empty[T]) Next() (T, error) {
	var zeroValue T
	return zeroValue, ErrNoSuchElement
}

func (empty[T]) PeekNext() (T, error) {
	var zeroValue T
	return zeroValue, ErrNoSuchElement
}

func (empty[T]) Previous() (T, error) {
	var zeroValue T
	return zeroValue, ErrNoSuchElement
}

func (empty[T]) PeekPrevious() (T, error) {
	var zeroValue T
	return zeroValue, ErrNoSuchElement
}
