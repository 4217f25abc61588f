// Package money holds the exact-decimal helpers shared by the pricing
// pipeline. Every intermediate value stays a decimal; conversion to integer
// minor units happens exactly once, during cart aggregation.
package money

import "github.com/shopspring/decimal"

func init() {
	// Divisions (net from gross) keep 20 fractional digits, matching the
	// precision the catalog price tables were derived with.
	decimal.DivisionPrecision = 20
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// RoundMinor rounds v to the nearest whole minor unit, ties away from zero.
func RoundMinor(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

// MinorUnits returns v rounded to the nearest whole minor unit as an int64.
func MinorUnits(v decimal.Decimal) int64 {
	return v.Round(0).IntPart()
}
