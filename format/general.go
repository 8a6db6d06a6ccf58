package format

// GeneralFlag is a formatting flag that applies to every conversion.
type GeneralFlag uint8

const (
	LeftJustify GeneralFlag = iota
	Uppercase
	Alternate

	generalFlagCount = 3
)

// GeneralFlags is a set of GeneralFlag.
type GeneralFlags = Flags[GeneralFlag]

func (GeneralFlag) Cardinality() int {
	return generalFlagCount
}

func (f GeneralFlag) String() string {
	switch f {
	case LeftJustify:
		return "LeftJustify"
	case Uppercase:
		return "Uppercase"
	case Alternate:
		return "Alternate"
	default:
		return "unknown"
	}
}
