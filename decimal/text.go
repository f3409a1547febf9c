package decimal

import (
	"github.com/zeebo/errs"
)

// Error is the class of decimal errors.
var Error = errs.Class("decimal")

// maxText is the rendering of the largest 32-bit value. Equal-length digit
// strings order lexicographically the same as numerically, so a ten-digit
// input can be range checked without parsing it first.
const maxText = "4294967295"

// Append appends the ASCII rendering of a happy Decimal to dst and returns
// the extended slice. Slots left of the first nonzero slot are skipped and
// the rest emitted left to right, so no leading zeros appear; the zero
// Decimal renders as "0". Rendering an unhappy Decimal produces bytes
// beyond '9'; callers own the happy precondition, as with AddLazy.
func (d Decimal) Append(dst []byte) []byte {
	if d.IsZero() {
		return append(dst, '0')
	}

	i := 0
	for d[i] == 0 {
		i++
	}

	for ; i < Width; i++ {
		dst = append(dst, d[i]+'0')
	}

	return dst
}

// String returns the ASCII rendering of a happy Decimal.
func (d Decimal) String() string {
	return string(d.Append(make([]byte, 0, Width)))
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (data []byte, err error) {
	return d.Append(make([]byte, 0, Width)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts 1 to 10
// ASCII digits (leading zeros allowed) and rejects anything else,
// including values above 4294967295.
func (d *Decimal) UnmarshalText(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty text")
	}
	if len(data) > Width {
		return Error.New("too long: %d bytes", len(data))
	}

	var r Decimal
	for i, c := range data {
		if c < '0' || c > '9' {
			return Error.New("invalid digit %q at offset %d", c, i)
		}
		r[Width-len(data)+i] = c - '0'
	}

	if len(data) == Width && string(data) > maxText {
		return Error.New("out of range: %s", data)
	}

	*d = r

	return nil
}
