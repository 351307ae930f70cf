package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units (1/100 of the
// account currency). All balances, prices and totals are carried as
// Cents inside the core; decimal strings exist only at the API edge.
type Cents int64

// ParseAmount converts a decimal string like "1234.50" into Cents.
// Amounts with more than two fractional digits are rejected rather
// than silently rounded.
func ParseAmount(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("invalid amount %q: more than two fractional digits", s)
	}

	return Cents(minor.IntPart()), nil
}

// MustParseAmount is ParseAmount for compile-time constants in tests
// and seeds. It panics on malformed input.
func MustParseAmount(s string) Cents {
	c, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the amount as a decimal string with two fractional
// digits, e.g. Cents(150025) -> "1500.25".
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// MulVolume returns the total price of volume shares at unit price c.
// Integer arithmetic, no rounding involved.
func (c Cents) MulVolume(volume int64) Cents {
	return c * Cents(volume)
}
