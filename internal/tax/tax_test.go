package tax

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/money"
)

func TestNetFromGross(t *testing.T) {
	gross := decimal.NewFromInt(3900)
	vat := decimal.NewFromInt(24)
	net := NetFromGross(gross, vat)
	if money.MinorUnits(net) != 3145 {
		t.Fatalf("expected net 3145, got %s", net)
	}
}

func TestGrossNetRoundTrip(t *testing.T) {
	// Deriving net from gross and back must reproduce the original value
	// within rounding tolerance, at every catalog rate.
	for _, rate := range []int64{0, 10, 14, 24, 28} {
		vat := decimal.NewFromInt(rate)
		for _, grossMinor := range []int64{690, 1000, 3900, 4490, 41900} {
			gross := decimal.NewFromInt(grossMinor)
			back := GrossFromNet(NetFromGross(gross, vat), vat)
			if money.MinorUnits(back) != grossMinor {
				t.Fatalf("rate %d: round trip of %d produced %s", rate, grossMinor, back)
			}
		}
	}
}

func TestValueMatchesGrossMinusNet(t *testing.T) {
	vat := decimal.NewFromInt(24)
	net := NetFromGross(decimal.NewFromInt(3900), vat)
	taxValue := Value(net, vat)
	if money.MinorUnits(taxValue) != 755 {
		t.Fatalf("expected tax 755, got %s", taxValue)
	}
}

func TestApplicablePercent(t *testing.T) {
	vat := decimal.NewFromInt(24)
	if got := ApplicablePercent(vat, "FI"); !got.Equal(vat) {
		t.Fatalf("EU destination should keep the product rate, got %s", got)
	}
	if got := ApplicablePercent(vat, "US"); !got.IsZero() {
		t.Fatalf("non-EU destination should be zero-rated, got %s", got)
	}
	if got := ApplicablePercent(vat, "JP"); !got.IsZero() {
		t.Fatalf("non-EU destination should be zero-rated, got %s", got)
	}
}
