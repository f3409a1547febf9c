// Package decimal provides a byte-per-digit base 10 accumulator.
//
// A Decimal spreads a number over ten byte slots, one decimal place per
// slot, most significant first:
//
//  | slot  | 0    | 1    | 2    | 3    | 4    | 5    | 6    | 7    | 8    | 9    |
//  |-------|------|------|------|------|------|------|------|------|------|------|
//  | place | 10^9 | 10^8 | 10^7 | 10^6 | 10^5 | 10^4 | 10^3 | 10^2 | 10^1 | 10^0 |
//
// For example 32 is {0, 0, 0, 0, 0, 0, 0, 0, 3, 2} (digit values, not
// ASCII). Ten slots hold the largest 32-bit unsigned integer, 4294967295.
//
// A Decimal is "happy" when every slot is in [0, 9]. A happy Decimal reads
// off directly as the decimal rendering of its value. Arithmetic here is
// built so that unhappiness is transient and cheap to repair.
//
// Lazy Addition
//
// AddLazy adds two Decimals slot by slot and does not carry. Slots
// accumulate values above 9 and the result is usually unhappy, but as long
// as no slot exceeds 255 no information is lost: the carries are merely
// deferred. Deferring them pays off when summing many Decimals, because
// the repair pass runs once at the end instead of once per addition.
//
// The ten slot additions are executed as two machine additions, a uint64
// over slots 0-7 and a uint16 over slots 8-9. With every lane below 256
// no byte lane overflows into its neighbor, so adding the words is
// identical to adding the ten bytes one by one.
//
// The Squeeze
//
// Carry walks the slots right to left, like squeezing a toothpaste tube.
// Each slot is split into quotient and remainder by 10 (by table lookup,
// never by a division instruction); the remainder stays, and the quotient
// joins the slot to the left:
//
//  before | 3 | 9 | 33 | 59 | 50 | 86 | 97 | 90 | 114 | 155 |
//  after  | 4 | 2 | 9  | 4  | 9  | 6  | 7  | 2  | 9   | 5   |
//
// One pass touches every slot once and restores the happy invariant. Slot
// 0 receives carries but is never split itself: ten slots accommodate
// every 32-bit value, so nothing can carry out of the 10^9 place.
//
// The Worst Case
//
// Lazy addition is only sound while the 255-per-slot bound holds. For
// 32-bit inputs the bound follows from the shape of the power-of-two
// expansions, not from digit arithmetic in general: summing all 32
// expansions 2^0 through 2^31, the heaviest load any 32-bit value can
// place on the accumulator, gives per-slot totals of
//
//  | 3 | 9 | 33 | 59 | 50 | 86 | 97 | 90 | 114 | 155 |
//
// peaking at 155 before the squeeze and at 129 during it, both below 256.
// Every other input sets fewer bits and loads every slot no more heavily.
// The bound is re-derived from the shipped tables by test rather than
// trusted.
//
// Wider Integers
//
// None of this transfers to 64-bit inputs as is: 64 addends can push a
// slot past 255 before the final squeeze. A 64-bit variant would need
// either periodic carrying (after at most 25 lazy additions of arbitrary
// happy values, sooner is safer) or wider slots. This package deliberately
// stops at 32 bits.
package decimal
