package hexiter

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchElement                     = errors.New("no such element")
	ErrUnsupportedOperation              = errors.New("unsupported operation")
	ErrOutOfRange                        = errors.New("out of range")
	ErrInvalidHexCharacter               = errors.New("invalid hex character")
	ErrExpectedEvenNumberOfHexCharacters = errors.New("expected an even number of hex characters")
)

// FormatError reports malformed input met by a decoding stage.
// Err is ErrInvalidHexCharacter or ErrExpectedEvenNumberOfHexCharacters.
type FormatError struct {
	Err error

	// Index is the source index of the offending code point.
	Index int
	Rune  rune
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q at index %d", e.Err, e.Rune, e.Index)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
