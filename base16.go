package hexiter

import (
	"fmt"

	"golang.org/x/text/width"
)

// Base16Decoder decodes pairs of hex digit code points from S into bytes.
//
// Index counts decoded bytes and starts at 0 whatever the position of the source.
// Once the decoder meets malformed input it stays failed: every later move or
// peek returns the same error and the source is left where the bad unit was read.
type Base16Decoder[S Cursor[rune]] struct {
	src    S
	marker Marker // nil when the source can only be walked
	flags  DecodeFlags

	pending  byte
	havePair bool // the source sits two units past the pair boundary
	mark     Mark // pair boundary, when marker is set

	index int
	err   error
}

var _ Cursor[byte] = (*Base16Decoder[*StringCursor])(nil)

// NewBase16Decoder creates a decoder that exclusively drives src.
func NewBase16Decoder[S Cursor[rune]](src S, opts ...DecoderOption) *Base16Decoder[S] {
	var cfg decoderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Base16Decoder[S]{
		src:   src,
		flags: cfg.flags,
	}

	if m, ok := any(src).(Marker); ok {
		d.marker = m
	}

	return d
}

// Source returns the cursor the decoder reads from.
func (d *Base16Decoder[S]) Source() S {
	return d.src
}

func (d *Base16Decoder[S]) HasNext() bool {
	return d.fill() == nil && d.havePair
}

func (d *Base16Decoder[S]) Next() (byte, error) {
	if err := d.fill(); err != nil {
		return 0, err
	}

	if !d.havePair {
		return 0, ErrNoSuchElement
	}

	d.havePair = false
	d.index++
	return d.pending, nil
}

func (d *Base16Decoder[S]) PeekNext() (byte, error) {
	if err := d.fill(); err != nil {
		return 0, err
	}

	if !d.havePair {
		return 0, ErrNoSuchElement
	}

	return d.pending, nil
}

func (d *Base16Decoder[S]) HasPrevious() bool {
	return d.err == nil && d.index > 0
}

func (d *Base16Decoder[S]) Previous() (byte, error) {
	if err := d.rewind(); err != nil {
		return 0, err
	}

	b1, err := d.src.Previous()
	if err != nil {
		return 0, d.upstream(err)
	}

	b0, err := d.src.Previous()
	if err != nil {
		return 0, d.upstream(err)
	}

	b, err := d.calc(b0, b1, d.src.Index())
	if err != nil {
		return 0, err
	}

	d.index--
	return b, nil
}

func (d *Base16Decoder[S]) PeekPrevious() (byte, error) {
	if err := d.rewind(); err != nil {
		return 0, err
	}

	if d.marker != nil {
		m := d.marker.Mark()

		b1, err := d.src.Previous()
		if err != nil {
			return 0, d.upstream(err)
		}

		b0, err := d.src.Previous()
		if err != nil {
			return 0, d.upstream(err)
		}

		i0 := d.src.Index()
		d.marker.Reset(m)

		return d.calc(b0, b1, i0)
	}

	// Read back over b1, peek at b0, then walk forward over b1 again.
	b1, err := d.src.Previous()
	if err != nil {
		return 0, d.upstream(err)
	}

	i0 := d.src.Index() - 1
	b0, err := d.src.PeekPrevious()
	if err != nil {
		return 0, d.upstream(err)
	}

	if _, err := d.src.Next(); err != nil {
		return 0, d.upstream(err)
	}

	return d.calc(b0, b1, i0)
}

func (d *Base16Decoder[S]) Index() int {
	return d.index
}

// Err returns the format error that stopped the decoder, or an error from its source.
func (d *Base16Decoder[S]) Err() error {
	return d.err
}

// fill decodes the next pair into the cache unless it is already there.
// A nil error with havePair unset means the source is exhausted.
func (d *Base16Decoder[S]) fill() error {
	if d.err != nil {
		return d.err
	}

	if d.havePair {
		return nil
	}

	if !d.src.HasNext() {
		if err := d.src.Err(); err != nil {
			return d.upstream(err)
		}
		return nil
	}

	if d.marker != nil {
		d.mark = d.marker.Mark()
	}

	i0 := d.src.Index()
	b0, err := d.src.Next()
	if err != nil {
		return d.upstream(err)
	}

	if !d.src.HasNext() {
		if err := d.src.Err(); err != nil {
			return d.upstream(err)
		}
		return d.fail(ErrExpectedEvenNumberOfHexCharacters, i0, b0)
	}

	b1, err := d.src.Next()
	if err != nil {
		return d.upstream(err)
	}

	b, err := d.calc(b0, b1, i0)
	if err != nil {
		return err
	}

	d.pending = b
	d.havePair = true
	return nil
}

// rewind checks that a byte lies behind the decoder and drops a cached
// forward pair, moving the source back to the pair boundary.
func (d *Base16Decoder[S]) rewind() error {
	if d.err != nil {
		return d.err
	}

	if d.index == 0 {
		return ErrNoSuchElement
	}

	if !d.havePair {
		return nil
	}

	d.havePair = false

	if d.marker != nil {
		d.marker.Reset(d.mark)
		return nil
	}

	for i := 0; i < 2; i++ {
		if _, err := d.src.Previous(); err != nil {
			return d.upstream(err)
		}
	}

	return nil
}

func (d *Base16Decoder[S]) calc(b0, b1 rune, i0 int) (byte, error) {
	d0, ok := d.digit(b0)
	if !ok {
		return 0, d.fail(ErrInvalidHexCharacter, i0, b0)
	}

	d1, ok := d.digit(b1)
	if !ok {
		return 0, d.fail(ErrInvalidHexCharacter, i0+1, b1)
	}

	return byte(((d0 << 4) | d1) & 0xff), nil
}

func (d *Base16Decoder[S]) digit(r rune) (int, bool) {
	if d.flags.Contains(AcceptWideDigits) && r >= 0x80 {
		if narrow := width.LookupRune(r).Narrow(); narrow != 0 {
			r = narrow
		}
	}

	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		if d.flags.Contains(LowerCaseOnly) {
			return 0, false
		}
		return int(r-'A') + 10, true
	}

	return 0, false
}

func (d *Base16Decoder[S]) fail(cause error, index int, r rune) error {
	d.err = &FormatError{Err: cause, Index: index, Rune: r}
	return d.err
}

// upstream records a failure of the source. Running out of units where the
// decoder expected some means the source broke its contract.
func (d *Base16Decoder[S]) upstream(err error) error {
	d.err = fmt.Errorf("base16 source at byte %d: %w", d.index, err)
	return d.err
}
