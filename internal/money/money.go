package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a currency value in integer minor units (cents). Summing minor
// units keeps donation totals exact; decimal conversion happens only at the
// request/response boundary.
type Amount int64

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal currency string such as "25.50" into minor units.
// Values with sub-cent precision are rejected.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts a major-unit decimal value into minor units.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Mul(hundred)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("money: %s has sub-cent precision", d)
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns the major-unit decimal form of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(a)).Div(hundred)
}

// Float64 returns the major-unit value for JSON responses.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// String formats the amount with two fractional digits, e.g. "25.50".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
