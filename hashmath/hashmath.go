// Package hashmath holds routines useful for hash code computation.
//
// The exact combination algorithms may change and must not be relied on for
// hashes that outlive the process.
package hashmath

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

const preselectedPrime = 1299827

// RoundToPowerOfTwo rounds v up to the next power of two.
// v must be within [0, 2^30].
func RoundToPowerOfTwo[T constraints.Integer](v T) (T, error) {
	if v < 0 || uint64(v) > 1<<30 {
		return 0, fmt.Errorf("value %d not in [0, %d]", v, 1<<30)
	}

	if v <= 1 {
		return v, nil
	}

	r := uint64(1) << bits.Len64(uint64(v)-1)
	if T(r) <= 0 {
		return 0, fmt.Errorf("rounding %d overflows %T", v, v)
	}

	return T(r), nil
}

// MultiplyWrap multiplies a and b and xors the overflow back into the low 32 bits.
// It is commutative but not associative, which suits ordered hash chains.
func MultiplyWrap(a, b int32) int32 {
	r := int64(a) * int64(b)
	return int32(r) ^ int32(uint64(r)>>32)
}

// MultiHashOrdered combines acc and next so that the order of combination matters.
func MultiHashOrdered(acc, prime, next int32) int32 {
	return MultiplyWrap(acc, prime) + next
}

// MultiHashUnordered combines acc and next so that the order of combination does not matter.
func MultiHashUnordered(acc, prime, next int32) int32 {
	return MultiplyWrap(next, prime) + acc
}

func MultiHashOrderedDefault(acc, next int32) int32 {
	return MultiHashOrdered(acc, preselectedPrime, next)
}

func MultiHashUnorderedDefault(acc, next int32) int32 {
	return MultiHashUnordered(acc, preselectedPrime, next)
}
