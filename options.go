package hexiter

import "github.com/SLASH2NL/hexiter/format"

// DecodeFlag tunes how a decoding stage accepts digits.
type DecodeFlag uint8

const (
	// LowerCaseOnly rejects the digits A-F.
	LowerCaseOnly DecodeFlag = iota
	// AcceptWideDigits folds full-width forms such as '０' and 'Ａ' to their ASCII digits.
	AcceptWideDigits

	decodeFlagCount = 2
)

// DecodeFlags is a set of DecodeFlag.
type DecodeFlags = format.Flags[DecodeFlag]

func (DecodeFlag) Cardinality() int {
	return decodeFlagCount
}

func (f DecodeFlag) String() string {
	switch f {
	case LowerCaseOnly:
		return "LowerCaseOnly"
	case AcceptWideDigits:
		return "AcceptWideDigits"
	default:
		return "unknown"
	}
}

type decoderConfig struct {
	flags DecodeFlags
}

type DecoderOption func(c *decoderConfig)

// WithFlags replaces the decode flags.
func WithFlags(flags DecodeFlags) DecoderOption {
	return func(c *decoderConfig) {
		c.flags = flags
	}
}

func WithLowerCaseOnly() DecoderOption {
	return func(c *decoderConfig) {
		c.flags = c.flags.With(LowerCaseOnly)
	}
}

func WithWideDigits() DecoderOption {
	return func(c *decoderConfig) {
		c.flags = c.flags.With(AcceptWideDigits)
	}
}
