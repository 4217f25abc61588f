// Package tax converts between gross and net values at a given VAT
// percentage and resolves which percentage applies for a destination.
// All functions operate on exact decimals and never round; rounding is the
// cart aggregation step's responsibility.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/country"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// NetFromGross removes tax from a gross value: net = gross / (1 + p/100).
func NetFromGross(gross, taxPercent decimal.Decimal) decimal.Decimal {
	return gross.Div(one.Add(taxPercent.Div(hundred)))
}

// GrossFromNet adds tax to a net value.
func GrossFromNet(net, taxPercent decimal.Decimal) decimal.Decimal {
	return net.Add(Value(net, taxPercent))
}

// Value returns the tax carried on top of a net value.
func Value(net, taxPercent decimal.Decimal) decimal.Decimal {
	gross := net.Mul(one.Add(taxPercent.Div(hundred)))
	return gross.Sub(net)
}

// ApplicablePercent resolves the VAT percentage for a product shipped to the
// given country: the product's own percentage inside the EU, zero elsewhere.
func ApplicablePercent(productVATPercent decimal.Decimal, shipToCountry string) decimal.Decimal {
	if country.IsEU(shipToCountry) {
		return productVATPercent
	}
	return decimal.Zero
}
