package format

import "fmt"

// NumericFlag is a formatting flag that only applies to numeric conversions.
type NumericFlag uint8

const (
	Sign NumericFlag = iota
	SpaceSign
	ZeroPad
	Grouping
	NegativeParentheses

	numericFlagCount = 5
)

// NumericFlags is a set of NumericFlag.
type NumericFlags = Flags[NumericFlag]

func (NumericFlag) Cardinality() int {
	return numericFlagCount
}

func (f NumericFlag) String() string {
	switch f {
	case Sign:
		return "Sign"
	case SpaceSign:
		return "SpaceSign"
	case ZeroPad:
		return "ZeroPad"
	case Grouping:
		return "Grouping"
	case NegativeParentheses:
		return "NegativeParentheses"
	default:
		return "unknown"
	}
}

// ParseFlags reads printf-style flag characters ("-#+ 0,(") into general and numeric sets.
// A flag given twice is an error.
func ParseFlags(s string) (GeneralFlags, NumericFlags, error) {
	var (
		general GeneralFlags
		numeric NumericFlags
	)

	for i, r := range s {
		var seen bool

		switch r {
		case '-':
			seen = general.Contains(LeftJustify)
			general = general.With(LeftJustify)
		case '#':
			seen = general.Contains(Alternate)
			general = general.With(Alternate)
		case '+':
			seen = numeric.Contains(Sign)
			numeric = numeric.With(Sign)
		case ' ':
			seen = numeric.Contains(SpaceSign)
			numeric = numeric.With(SpaceSign)
		case '0':
			seen = numeric.Contains(ZeroPad)
			numeric = numeric.With(ZeroPad)
		case ',':
			seen = numeric.Contains(Grouping)
			numeric = numeric.With(Grouping)
		case '(':
			seen = numeric.Contains(NegativeParentheses)
			numeric = numeric.With(NegativeParentheses)
		default:
			return 0, 0, fmt.Errorf("unknown flag %q at position %d", r, i)
		}

		if seen {
			return 0, 0, fmt.Errorf("duplicate flag %q at position %d", r, i)
		}
	}

	// Sign and SpaceSign are mutually exclusive, as are LeftJustify and ZeroPad.
	if numeric.Contains(Sign) {
		if err := numeric.Forbid(SpaceSign); err != nil {
			return 0, 0, err
		}
	}
	if general.Contains(LeftJustify) {
		if err := numeric.Forbid(ZeroPad); err != nil {
			return 0, 0, err
		}
	}

	return general, numeric, nil
}
