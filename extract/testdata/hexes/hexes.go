package hexes

import (
	"github.com/SLASH2NL/hexiter"
)

const (
	magic       hexiter.Hex = "cafebabe"
	plainString             = "0102"
	broken      hexiter.Hex = "abc"
)

var (
	varHex = "beef"
)

func Use() {
	decode(magic)
	decode("ff00")
	decode(plainString)

	var inline hexiter.Hex = "dead"
	decode(inline)

	decode(hexiter.Hex(varHex))

	_, _ = hexiter.Hex("zz").Decode()

	decode("\x61\x62")
	decode(broken)

	notHex("1234")
}

func decode(h hexiter.Hex) []byte {
	b, _ := h.Decode()
	return b
}

func notHex(s string) string {
	return s
}
