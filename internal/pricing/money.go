package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Cents is an amount of US currency in whole cents. All pricing arithmetic
// happens in Cents so that breakdown components always sum exactly.
type Cents int64

// FromDollars converts a decimal dollar amount to Cents, rounding half away from zero.
func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the amount as a decimal dollar value.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Times multiplies a unit amount by a quantity.
func (c Cents) Times(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount like "$1,234.56".
func (c Cents) String() string {
	neg := c < 0
	if neg {
		c = -c
	}

	whole := strconv.FormatInt(int64(c)/100, 10)
	frac := int64(c) % 100

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}

// MarshalJSON renders the amount as a dollar number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Dollars(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts a dollar number.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var d float64
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*c = FromDollars(d)
	return nil
}
