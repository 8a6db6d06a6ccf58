package hexiter

// Hex is a string of hexadecimal digits, two per byte.
type Hex string

// Cursor returns a decoder over the digits of h.
func (h Hex) Cursor(opts ...DecoderOption) *Base16Decoder[*StringCursor] {
	return NewBase16Decoder(NewStringCursor(string(h)), opts...)
}

func (h Hex) Decode(opts ...DecoderOption) ([]byte, error) {
	return Collect[byte](h.Cursor(opts...))
}

// DecodeString decodes the hex digits in s.
func DecodeString(s string, opts ...DecoderOption) ([]byte, error) {
	return Hex(s).Decode(opts...)
}

// MustDecodeString decodes s and panics if it is malformed.
func MustDecodeString(s string, opts ...DecoderOption) []byte {
	b, err := DecodeString(s, opts...)
	if err != nil {
		panic(err)
	}

	return b
}
