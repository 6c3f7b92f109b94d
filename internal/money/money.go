// Package money converts between user-facing decimal amounts and the integer
// cents used everywhere internally. Parsing goes through shopspring/decimal
// so "12.50" becomes exactly 1250 — no binary-float rounding on the way in.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseCents parses a decimal amount string into non-negative integer cents.
// Sub-cent precision and negative values are rejected.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q must not be negative", s)
	}
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents with two decimal places, e.g. 1250 → "12.50".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatSigned renders cents with an explicit sign, e.g. +12.50 / -3.00.
func FormatSigned(cents int64) string {
	if cents < 0 {
		return "-" + FormatCents(-cents)
	}
	return "+" + FormatCents(cents)
}
