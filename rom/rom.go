// Package rom holds the precomputed decimal expansions of the 32 powers of
// two a 32-bit value can contain.
//
// Entries are ordered 2^31 down to 2^0, so an entry's index is the count
// of leading zero bits of its power, which is the order a most significant
// first bit scan discovers set bits in. Each entry is a happy ten slot
// digit vector; table values are never recomputed or mutated, only copied
// out.
package rom

import (
	"github.com/calebcase/romdec/decimal"
)

// Entries is the number of expansions in the table, one per bit of a
// 32-bit value.
const Entries = 32

var table = [Entries]decimal.Decimal{
	{2, 1, 4, 7, 4, 8, 3, 6, 4, 8}, // 2^31 = 2147483648
	{1, 0, 7, 3, 7, 4, 1, 8, 2, 4}, // 2^30 = 1073741824
	{0, 5, 3, 6, 8, 7, 0, 9, 1, 2}, // 2^29 =  536870912
	{0, 2, 6, 8, 4, 3, 5, 4, 5, 6}, // 2^28 =  268435456
	{0, 1, 3, 4, 2, 1, 7, 7, 2, 8}, // 2^27 =  134217728
	{0, 0, 6, 7, 1, 0, 8, 8, 6, 4}, // 2^26 =   67108864
	{0, 0, 3, 3, 5, 5, 4, 4, 3, 2}, // 2^25 =   33554432
	{0, 0, 1, 6, 7, 7, 7, 2, 1, 6}, // 2^24 =   16777216
	{0, 0, 0, 8, 3, 8, 8, 6, 0, 8}, // 2^23 =    8388608
	{0, 0, 0, 4, 1, 9, 4, 3, 0, 4}, // 2^22 =    4194304
	{0, 0, 0, 2, 0, 9, 7, 1, 5, 2}, // 2^21 =    2097152
	{0, 0, 0, 1, 0, 4, 8, 5, 7, 6}, // 2^20 =    1048576
	{0, 0, 0, 0, 5, 2, 4, 2, 8, 8}, // 2^19 =     524288
	{0, 0, 0, 0, 2, 6, 2, 1, 4, 4}, // 2^18 =     262144
	{0, 0, 0, 0, 1, 3, 1, 0, 7, 2}, // 2^17 =     131072
	{0, 0, 0, 0, 0, 6, 5, 5, 3, 6}, // 2^16 =      65536
	{0, 0, 0, 0, 0, 3, 2, 7, 6, 8}, // 2^15 =      32768
	{0, 0, 0, 0, 0, 1, 6, 3, 8, 4}, // 2^14 =      16384
	{0, 0, 0, 0, 0, 0, 8, 1, 9, 2}, // 2^13 =       8192
	{0, 0, 0, 0, 0, 0, 4, 0, 9, 6}, // 2^12 =       4096
	{0, 0, 0, 0, 0, 0, 2, 0, 4, 8}, // 2^11 =       2048
	{0, 0, 0, 0, 0, 0, 1, 0, 2, 4}, // 2^10 =       1024
	{0, 0, 0, 0, 0, 0, 0, 5, 1, 2}, // 2^9  =        512
	{0, 0, 0, 0, 0, 0, 0, 2, 5, 6}, // 2^8  =        256
	{0, 0, 0, 0, 0, 0, 0, 1, 2, 8}, // 2^7  =        128
	{0, 0, 0, 0, 0, 0, 0, 0, 6, 4}, // 2^6  =         64
	{0, 0, 0, 0, 0, 0, 0, 0, 3, 2}, // 2^5  =         32
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 6}, // 2^4  =         16
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 8}, // 2^3  =          8
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 4}, // 2^2  =          4
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 2}, // 2^1  =          2
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, // 2^0  =          1
}

// Entry returns the expansion at index i, counting from the top: Entry(0)
// is 2^31 and Entry(31) is 2^0. The index is the leading zero count of the
// power, which is how a bit scan naturally addresses the table.
func Entry(i int) decimal.Decimal {
	return table[i]
}

// ForBit returns the expansion of 2^k for k in [0, 31].
func ForBit(k int) decimal.Decimal {
	return table[Entries-1-k]
}
