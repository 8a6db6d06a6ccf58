package sub

import "github.com/SLASH2NL/hexiter"

const Separator hexiter.Hex = "0a0b"
