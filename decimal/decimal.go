package decimal

import (
	"encoding/binary"
)

// Width is the number of digit slots in a Decimal: enough to hold the
// largest 32-bit unsigned integer with one byte per digit.
const Width = 10

// Decimal is a base 10 digit vector. Slot 0 holds the most significant
// digit (the 10^9 place), slot 9 the units place. The zero value is the
// number 0.
//
// A Decimal is happy when every slot is in [0, 9]. Lazy addition can push
// slots above 9; Carry restores happiness.
type Decimal [Width]uint8

// AddLazy returns the slot-wise sum of d and x without carrying.
//
// The ten byte additions are performed as one uint64 addition over slots
// 0-7 and one uint16 addition over slots 8-9. As long as no slot of the
// result exceeds 255 the byte lanes cannot collide, so the two word
// additions are exactly the ten independent slot additions.
//
// The caller is responsible for that bound. Summing any subset of the 32
// power-of-two expansions of a 32-bit value stays within it; see the
// package documentation for the worst case. When the bound cannot be
// asserted, use Add instead.
func (d Decimal) AddLazy(x Decimal) Decimal {
	var r Decimal

	binary.BigEndian.PutUint64(r[0:8],
		binary.BigEndian.Uint64(d[0:8])+binary.BigEndian.Uint64(x[0:8]))
	binary.BigEndian.PutUint16(r[8:10],
		binary.BigEndian.Uint16(d[8:10])+binary.BigEndian.Uint16(x[8:10]))

	return r
}

// addBytewise is the reference form of AddLazy: ten independent slot
// additions. The equivalence test holds AddLazy to it.
func (d Decimal) addBytewise(x Decimal) Decimal {
	for i := range d {
		d[i] += x[i]
	}

	return d
}

// Carry propagates carries from the units slot up to slot 0, squeezing the
// accumulated excess left one slot at a time like a toothpaste tube. Each
// slot is reduced modulo 10 by table lookup and its quotient added to the
// slot on its left. The result is happy.
//
// Slot 0 is never itself reduced: no 32-bit value can carry out of the
// 10^9 place. Revisit that, along with the lazy bound, before changing the
// slot count or the input width.
func (d Decimal) Carry() Decimal {
	for i := Width - 1; i > 0; i-- {
		d[i-1] += quotients[d[i]]
		d[i] = remainders[d[i]]
	}

	return d
}

// Add returns the carried sum of d and x. Safe on any pair of happy
// Decimals; the result is always happy.
func (d Decimal) Add(x Decimal) Decimal {
	return d.AddLazy(x).Carry()
}

// IsZero reports whether every slot is zero.
func (d Decimal) IsZero() bool {
	return d == Decimal{}
}

// Happy reports whether every slot is a single decimal digit.
func (d Decimal) Happy() bool {
	for _, s := range d {
		if s > 9 {
			return false
		}
	}

	return true
}

// Uint32 returns the numeric value of a happy Decimal.
func (d Decimal) Uint32() uint32 {
	var v uint32
	for _, s := range d {
		v = v*10 + uint32(s)
	}

	return v
}
