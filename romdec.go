// Package romdec converts unsigned 32-bit integers to decimal digits by
// table lookup: every set bit contributes a precomputed decimal expansion
// of its power of two, the contributions are summed lazily, and a single
// carry pass at the end settles the digits. No division or multiplication
// happens on the conversion path.
package romdec

import (
	"math/bits"

	"github.com/calebcase/romdec/decimal"
	"github.com/calebcase/romdec/rom"
)

// Strategy selects how an encoder visits the bits of its input.
type Strategy uint8

// Scan Strategies
const (
	// Jump skips directly to each set bit by leading zero count.
	Jump Strategy = iota

	// Sweep tests every bit position from most to least significant.
	Sweep
)

// Schema represents a configured conversion.
type Schema struct {
	Strategy Strategy
}

// Encode returns the digit vector of v: the sum of the expansions of its
// set bits, carried exactly once at the end. The zero value takes the
// carry pass too; carrying zero is a no-op.
func (s Strategy) Encode(v uint32) decimal.Decimal {
	return s.accumulate(v).Carry()
}

// accumulate returns the uncarried slot-wise sum of the expansions of the
// set bits of v. Both strategies visit the same bits, so their sums are
// identical; they differ only in how the unset positions are passed over.
func (s Strategy) accumulate(v uint32) decimal.Decimal {
	switch s {
	case Sweep:
		return sweep(v)
	default:
		return jump(v)
	}
}

func jump(v uint32) decimal.Decimal {
	var d decimal.Decimal

	for v != 0 {
		lz := bits.LeadingZeros32(v)
		d = d.AddLazy(rom.Entry(lz))
		v &^= 1 << (31 - lz)
	}

	return d
}

func sweep(v uint32) decimal.Decimal {
	var d decimal.Decimal

	for k := 31; k >= 0; k-- {
		if v&(1<<k) != 0 {
			d = d.AddLazy(rom.ForBit(k))
		}
	}

	return d
}

// Encode returns the digit vector of v.
func Encode(v uint32) decimal.Decimal {
	return Jump.Encode(v)
}

// Format returns the decimal rendering of v.
func Format(v uint32) string {
	return Encode(v).String()
}

// Append appends the decimal rendering of v to dst and returns the
// extended slice.
func Append(dst []byte, v uint32) []byte {
	return Encode(v).Append(dst)
}
