package decimal

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
)

func parse(t *testing.T, s string) (d Decimal) {
	t.Helper()

	err := d.UnmarshalText([]byte(s))
	require.NoError(t, err)

	return d
}

func TestRender(t *testing.T) {
	type TC struct {
		name string
		d    Decimal
		Mark error
	}

	tcs := []TC{
		{
			name: "0",
			d:    Decimal{},
			Mark: oops.New("unexpected"),
		},
		{
			name: "1",
			d:    Decimal{0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			Mark: oops.New("unexpected"),
		},
		{
			name: "42",
			d:    Decimal{0, 0, 0, 0, 0, 0, 0, 0, 4, 2},
			Mark: oops.New("unexpected"),
		},
		{
			name: "394789199",
			d:    Decimal{0, 3, 9, 4, 7, 8, 9, 1, 9, 9},
			Mark: oops.New("unexpected"),
		},
		{
			name: "1000000000",
			d:    Decimal{1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			Mark: oops.New("unexpected"),
		},
		{
			name: "4294967295",
			d:    Decimal{4, 2, 9, 4, 9, 6, 7, 2, 9, 5},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.name, tc.d.String(), tc.Mark)

			data, err := tc.d.MarshalText()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.name, string(data), tc.Mark)

			// Append extends its destination in place.
			require.Equal(t, "n="+tc.name, string(tc.d.Append([]byte("n="))), tc.Mark)
		})
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		text string
		err  bool
		Mark error
	}

	tcs := []TC{
		{
			text: "0",
			Mark: oops.New("unexpected"),
		},
		{
			text: "7",
			Mark: oops.New("unexpected"),
		},
		{
			text: "0042",
			Mark: oops.New("unexpected"),
		},
		{
			text: "0000000000",
			Mark: oops.New("unexpected"),
		},
		{
			text: "394789199",
			Mark: oops.New("unexpected"),
		},
		{
			text: "4294967295",
			Mark: oops.New("unexpected"),
		},
		{
			text: "",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "12a4",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "-1",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "+1",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: " 1",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "12345678901",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "4294967296",
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			text: "9999999999",
			err:  true,
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.text), func(t *testing.T) {
			// A failed parse must leave the receiver alone.
			d := Decimal{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}

			err := d.UnmarshalText([]byte(tc.text))

			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, Error.Has(err), tc.Mark)
				require.Equal(t, Decimal{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, d, tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.True(t, d.Happy(), tc.Mark)

			u, err := strconv.ParseUint(tc.text, 10, 32)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, uint32(u), d.Uint32(), tc.Mark)
			require.Equal(t, strconv.FormatUint(u, 10), d.String(), tc.Mark)
		})
	}

	t.Run("alignment", func(t *testing.T) {
		require.Equal(t, Decimal{0, 0, 0, 0, 0, 0, 0, 0, 4, 2}, parse(t, "42"))
		require.Equal(t, Decimal{0, 0, 0, 0, 0, 0, 0, 0, 4, 2}, parse(t, "042"))
	})
}

func TestTextRoundTrip(t *testing.T) {
	mark := oops.New("unexpected")

	r := rand.New(rand.NewSource(1))

	for n := 0; n < 10000; n++ {
		v := r.Uint32()
		text := strconv.FormatUint(uint64(v), 10)

		var d Decimal

		err := d.UnmarshalText([]byte(text))
		require.NoError(t, err, mark)
		require.Equal(t, v, d.Uint32(), mark)
		require.Equal(t, text, d.String(), mark)
	}
}
