package hexiter

import "unicode/utf8"

// StringCursor walks the code points of a string.
// Invalid UTF-8 yields utf8.RuneError for a single byte, like a range loop does.
type StringCursor struct {
	input string
	pos   int // byte offset in input
	index int // code points before pos
}

var (
	_ Cursor[rune] = (*StringCursor)(nil)
	_ Marker       = (*StringCursor)(nil)
)

// NewStringCursor creates a cursor positioned before the first code point of s.
func NewStringCursor(s string) *StringCursor {
	return &StringCursor{input: s}
}

func (c *StringCursor) HasNext() bool {
	return c.pos < len(c.input)
}

func (c *StringCursor) HasPrevious() bool {
	return c.pos > 0
}

func (c *StringCursor) Next() (rune, error) {
	if c.pos >= len(c.input) {
		return utf8.RuneError, ErrNoSuchElement
	}

	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += w
	c.index++
	return r, nil
}

func (c *StringCursor) PeekNext() (rune, error) {
	if c.pos >= len(c.input) {
		return utf8.RuneError, ErrNoSuchElement
	}

	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, nil
}

func (c *StringCursor) Previous() (rune, error) {
	if c.pos <= 0 {
		return utf8.RuneError, ErrNoSuchElement
	}

	r, w := utf8.DecodeLastRuneInString(c.input[:c.pos])
	c.pos -= w
	c.index--
	return r, nil
}

func (c *StringCursor) PeekPrevious() (rune, error) {
	if c.pos <= 0 {
		return utf8.RuneError, ErrNoSuchElement
	}

	r, _ := utf8.DecodeLastRuneInString(c.input[:c.pos])
	return r, nil
}

func (c *StringCursor) Index() int {
	return c.index
}

// Err exists for Cursor interface compatibility.
func (c *StringCursor) Err() error {
	return nil
}

func (c *StringCursor) Mark() Mark {
	return Mark{index: c.index, offset: c.pos}
}

func (c *StringCursor) Reset(m Mark) {
	c.index = m.index
	c.pos = m.offset
}
