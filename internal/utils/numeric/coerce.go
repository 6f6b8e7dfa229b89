// Package numeric holds the coercion helpers used when reading raw form values.
// Nothing here returns an error: unparsable input degrades to a default.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Parsed values outside these bounds coerce to zero. Exponent notation such as
// "1e200000000" would otherwise blow up on the first Add or Floor.
const (
	maxExponent = 20
	maxDigits   = 40
)

// CoerceAmount parses a raw amount field. Empty, unparsable or out-of-range input yields zero.
func CoerceAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !inRange(d) {
		return decimal.Zero
	}
	return d
}

func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxExponent || exp < -maxExponent {
		return false
	}
	return d.NumDigits()+int(exp) <= maxDigits
}

// CoerceRate parses a raw exchange rate field for use as a divisor.
// Empty or unparsable input yields zero, leaving the caller to guard the division.
func CoerceRate(raw string) decimal.Decimal {
	return CoerceAmount(raw)
}

// CoerceMultiplier parses a raw exchange rate field for use as a multiplier.
// A zero, empty or unparsable rate yields one.
func CoerceMultiplier(raw string) decimal.Decimal {
	d := CoerceAmount(raw)
	if d.IsZero() {
		return decimal.NewFromInt(1)
	}
	return d
}

// RoundUnit rounds to the nearest integer, with halves going towards positive infinity.
// This matches how the form displays amounts: 187.5 -> 188, -187.5 -> -187.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}
