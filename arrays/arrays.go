// Package arrays holds slice helpers beyond what the slices package provides.
package arrays

import (
	"strings"

	"golang.org/x/exp/constraints"
)

const hexDigits = "0123456789abcdef"

// RegionEqual compares a[offA:offA+n] with b[offB:offB+n].
// A region that does not fit in its slice is never equal.
func RegionEqual[T comparable](a []T, offA int, b []T, offB int, n int) bool {
	if n < 0 || offA < 0 || offA+n > len(a) {
		return false
	}
	if offB < 0 || offB+n > len(b) {
		return false
	}

	for i := 0; i < n; i++ {
		if a[offA+i] != b[offB+i] {
			return false
		}
	}

	return true
}

// HasPrefixAt reports whether all of prefix appears in s at off.
func HasPrefixAt[T comparable](s []T, off int, prefix []T) bool {
	return RegionEqual(s, off, prefix, 0, len(prefix))
}

// RegionEqualString compares the runes of a starting at offA with the runes of b starting at offB.
func RegionEqualString(a []rune, offA int, b string, offB int, n int) bool {
	return RegionEqual(a, offA, []rune(b), offB, n)
}

// HexString renders b as lower-case hex, high nibble first.
func HexString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)

	for _, x := range b {
		sb.WriteByte(hexDigits[x>>4])
		sb.WriteByte(hexDigits[x&0x0f])
	}

	return sb.String()
}

// IndexOf returns the index of the first v in s[off:off+n], or -1.
// The returned index is relative to the start of s.
func IndexOf[T comparable, I constraints.Integer](s []T, v T, off, n I) int {
	start := int(off)
	end := start + int(n)
	if start < 0 || end > len(s) {
		return -1
	}

	for i := start; i < end; i++ {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// CompactZero removes the zero values from s.
// If s holds none it is returned as is, otherwise s is overwritten and a
// shortened copy is returned.
func CompactZero[T comparable](s []T) []T {
	var zeroValue T

	r := 0
	for r < len(s) && s[r] != zeroValue {
		r++
	}

	if r == len(s) {
		return s
	}

	w := r
	for r++; r < len(s); r++ {
		if s[r] != zeroValue {
			s[w] = s[r]
			w++
		}
	}

	return append([]T(nil), s[:w]...)
}

// Of returns its arguments as a slice.
func Of[T any](items ...T) []T {
	return items
}
