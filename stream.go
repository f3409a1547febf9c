package romdec

import (
	"bufio"
	"errors"
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/romdec/decimal"
)

// Error is the class of romdec errors.
var Error = errs.Class("romdec")

// Encoder writes newline delimited decimal records.
type Encoder struct {
	schema Schema
	w      io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes the decimal rendering of v followed by a newline.
func (e *Encoder) Encode(v uint32) (err error) {
	defer Error.WrapP(&err)

	buf := make([]byte, 0, decimal.Width+1)
	buf = e.schema.Strategy.Encode(v).Append(buf)
	buf = append(buf, '\n')

	_, err = e.w.Write(buf)
	if err != nil {
		return err
	}

	return nil
}

// Decoder reads newline delimited decimal records.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: bufio.NewReader(r),
	}
}

// Decode reads one record into v. It returns io.EOF once the input is
// exhausted. A final record without a trailing newline is accepted.
func (d *Decoder) Decode(v *uint32) (err error) {
	line, err := d.r.ReadBytes('\n')
	switch {
	case err == nil:
		line = line[:len(line)-1]
	case errors.Is(err, io.EOF) && len(line) > 0:
		// Final record without a trailing newline.
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return Error.Wrap(err)
	}

	var dec decimal.Decimal

	err = dec.UnmarshalText(line)
	if err != nil {
		return Error.Wrap(err)
	}

	*v = dec.Uint32()

	return nil
}
