package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHalfCentNetAndTax(t *testing.T) {
	e := newTestEngine(t)

	// 20 * 3900 at VAT 28: the exact net is 60937.5 and the exact tax is
	// 17062.5. The tax rounds up; the net must absorb the difference so the
	// identity net + tax == gross holds.
	price, err := e.PriceCart([]CartItem{{SKU: "test-map-30x40cm-vat-28", Quantity: 20}}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(78000), price.Value)
	require.Equal(t, int64(60937), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(28, 17063, "170.63", "170,63 €")}, price.Taxes)
	require.Equal(t, price.Value, price.Net.Value+price.Taxes[0].Value)
}

func TestRoundingIdentityAcrossRates(t *testing.T) {
	e := newTestEngine(t)

	skus := []string{"test-product-vat-0", "test-product-vat-10", "test-product-vat-14", "test-product-vat-24"}
	for qty := 1; qty <= 7; qty++ {
		cart := make([]CartItem, 0, len(skus))
		for _, sku := range skus {
			cart = append(cart, CartItem{SKU: sku, Quantity: qty})
		}
		price, err := e.PriceCart(cart, Options{})
		require.NoError(t, err)

		var taxSum int64
		for _, line := range price.Taxes {
			taxSum += line.Value
		}
		require.Equal(t, price.Value, price.Net.Value+taxSum, "qty %d", qty)
	}
}

func TestUSDCurrency(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-12x18inch", Quantity: 1}}, Options{ShipToCountry: "US", Currency: "USD"})
	require.NoError(t, err)

	require.Equal(t, Price{
		Value:      4490,
		HumanValue: "44.90",
		Currency:   "USD",
		Label:      "$44.90",
		Net:        Amount{Value: 4490, HumanValue: "44.90", Label: "$44.90"},
		Taxes:      []TaxLine{taxLine(0, 0, "0.00", "$0.00")},
	}, price)
}

func TestJPYCurrencyIsZeroDecimal(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{ShipToCountry: "JP", Currency: "JPY"})
	require.NoError(t, err)

	require.Equal(t, Price{
		Value:               4699,
		HumanValue:          "4699",
		Currency:            "JPY",
		ZeroDecimalCurrency: true,
		Label:               "¥4,699",
		Net:                 Amount{Value: 4699, HumanValue: "4699", Label: "¥4,699"},
		Taxes:               []TaxLine{taxLine(0, 0, "0", "¥0")},
	}, price)
}

func TestGBPGiftCards(t *testing.T) {
	e := newTestEngine(t)
	net := int64(4900)

	price, err := e.PriceCart([]CartItem{
		{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: &net}},
		{SKU: "physical-gift-card", Quantity: 1},
	}, Options{Currency: "GBP"})
	require.NoError(t, err)

	require.Equal(t, int64(5490), price.Value)
	require.Equal(t, "£54.90", price.Label)
	require.Equal(t, int64(5376), price.Net.Value)
	require.Equal(t, []TaxLine{
		taxLine(0, 0, "0.00", "£0.00"),
		taxLine(24, 114, "1.14", "£1.14"),
	}, price.Taxes)
}

func TestUnsupportedCurrency(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{Currency: "CHF"})
	require.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestTaxPercentageOverride(t *testing.T) {
	e := newTestEngine(t)
	override := decimal.NewFromInt(10)

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{TaxPercentage: &override})
	require.NoError(t, err)

	// 3900 at a forced 10%: net 3545.45... -> tax rounds to 355
	require.Equal(t, int64(3900), price.Value)
	require.Equal(t, []TaxLine{taxLine(10, 355, "3.55", "3,55 €")}, price.Taxes)
	require.Equal(t, int64(3545), price.Net.Value)
}

func TestFractionalTaxPercentageOverride(t *testing.T) {
	e := newTestEngine(t)
	override := decimal.RequireFromString("25.5")

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{TaxPercentage: &override})
	require.NoError(t, err)

	// 3900 at 25.5%: net 3107.56... -> tax rounds to 792. The tax line must
	// report the rate it was collected at, not a whole-number approximation.
	require.Equal(t, int64(3900), price.Value)
	require.Equal(t, []TaxLine{{TaxPercentage: "25.5", Value: 792, HumanValue: "7.92", Label: "7,92 €"}}, price.Taxes)
	require.Equal(t, int64(3108), price.Net.Value)

	data, err := json.Marshal(price.Taxes[0])
	require.NoError(t, err)
	require.Contains(t, string(data), `"taxPercentage":25.5`)
}

func TestSupportedCurrencies(t *testing.T) {
	e := newTestEngine(t)
	require.Equal(t, []string{"AUD", "CAD", "DKK", "EUR", "GBP", "JPY", "NOK", "SEK", "USD"}, e.SupportedCurrencies())
}
