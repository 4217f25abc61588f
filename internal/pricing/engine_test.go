package pricing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pricing-api/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	return NewEngine(c, "FI", "EUR")
}

func taxLine(percent, value int64, human, label string) TaxLine {
	return TaxLine{TaxPercentage: TaxRate(strconv.FormatInt(percent, 10)), Value: value, HumanValue: human, Label: label}
}

func TestSingleItemCart(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{ShipToCountry: "FI"})
	require.NoError(t, err)

	require.Equal(t, Price{
		Value:      3900,
		HumanValue: "39.00",
		Currency:   "EUR",
		Label:      "39,00 €",
		Net:        Amount{Value: 3145, HumanValue: "31.45", Label: "31,45 €"},
		Taxes:      []TaxLine{taxLine(24, 755, "7.55", "7,55 €")},
	}, price)
}

func TestCartShippedOutsideEUIsZeroRated(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: 1}}, Options{ShipToCountry: "US"})
	require.NoError(t, err)

	require.Equal(t, int64(3900), price.Value)
	require.Equal(t, int64(3900), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(0, 0, "0.00", "0,00 €")}, price.Taxes)
}

func TestMultiItemCart(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{
		{SKU: "custom-map-print-30x40cm", Quantity: 1},
		{SKU: "custom-map-print-50x70cm", Quantity: 2},
		{SKU: "custom-map-print-70x100cm", Quantity: 1},
	}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(20600), price.Value)
	require.Equal(t, "206,00 €", price.Label)
	require.Equal(t, int64(16613), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(24, 3987, "39.87", "39,87 €")}, price.Taxes)
}

func TestPlywoodCart(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{
		{SKU: "custom-map-plywood-30x40cm", Quantity: 1},
		{SKU: "custom-map-plywood-50x70cm", Quantity: 1},
	}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(17800), price.Value)
	require.Equal(t, int64(14355), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(24, 3445, "34.45", "34,45 €")}, price.Taxes)
}

func TestInchPrintsCart(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{
		{SKU: "custom-map-print-12x18inch", Quantity: 1},
		{SKU: "custom-map-print-18x24inch", Quantity: 2},
		{SKU: "custom-map-print-24x36inch", Quantity: 1},
	}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(20890), price.Value)
	require.Equal(t, int64(16847), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(24, 4043, "40.43", "40,43 €")}, price.Taxes)
}

func TestAddonProductsCart(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{
		{SKU: "custom-map-print-30x40cm", Quantity: 1},
		{SKU: "custom-map-print-50x70cm", Quantity: 2},
		{SKU: "production-high-priority", Quantity: 1},
		{SKU: "shipping-express", Quantity: 1},
	}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(15200), price.Value)
	require.Equal(t, int64(12258), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(24, 2942, "29.42", "29,42 €")}, price.Taxes)
}

func TestFreeShippingAlone(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceCart([]CartItem{{SKU: "shipping-express", Quantity: 1}}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(0), price.Value)
	require.Equal(t, int64(0), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(24, 0, "0.00", "0,00 €")}, price.Taxes)
}

func TestMaxQuantityRule(t *testing.T) {
	e := newTestEngine(t)

	for _, sku := range []string{"production-high-priority", "shipping-express"} {
		_, err := e.PriceCart([]CartItem{{SKU: sku, Quantity: 2}}, Options{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, sku, vErr.SKU)
		require.Contains(t, vErr.Reason, "max allowed quantity is 1 but found 2")
	}
}

func TestGiftCardCart(t *testing.T) {
	e := newTestEngine(t)
	net := int64(4900)

	price, err := e.PriceCart([]CartItem{
		{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: &net}},
		{SKU: "physical-gift-card", Quantity: 1},
	}, Options{Currency: "EUR"})
	require.NoError(t, err)

	require.Equal(t, int64(5590), price.Value)
	require.Equal(t, int64(5456), price.Net.Value)
	require.Equal(t, []TaxLine{
		taxLine(0, 0, "0.00", "0,00 €"),
		taxLine(24, 134, "1.34", "1,34 €"),
	}, price.Taxes)
}

func TestGiftCardValidation(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		name   string
		item   CartItem
		reason string
	}{
		{
			name:   "missing customisation",
			item:   CartItem{SKU: "gift-card-value", Quantity: 1},
			reason: "no customisation found",
		},
		{
			name:   "missing net value",
			item:   CartItem{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{}},
			reason: "no customisation.netValue found",
		},
		{
			name:   "negative net value",
			item:   CartItem{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: ptr(int64(-4900))}},
			reason: "net price must be at least 1000",
		},
		{
			name:   "zero net value",
			item:   CartItem{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: ptr(int64(0))}},
			reason: "net price must be at least 1000",
		},
		{
			name:   "too low net value",
			item:   CartItem{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: ptr(int64(999))}},
			reason: "net price must be at least 1000",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.PriceCart([]CartItem{tc.item}, Options{})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Reason, tc.reason)
		})
	}
}

func TestMultipleGiftCards(t *testing.T) {
	e := newTestEngine(t)
	net := int64(1000)

	price, err := e.PriceCart([]CartItem{
		{SKU: "gift-card-value", Quantity: 3, Customisation: &Customisation{NetValue: &net}},
		{SKU: "physical-gift-card", Quantity: 3},
	}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(5070), price.Value)
	require.Equal(t, int64(4669), price.Net.Value)
	require.Equal(t, []TaxLine{
		taxLine(0, 0, "0.00", "0,00 €"),
		taxLine(24, 401, "4.01", "4,01 €"),
	}, price.Taxes)
}

func TestUnknownProduct(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.PriceCart([]CartItem{{SKU: "no-such-product", Quantity: 1}}, Options{})
	require.ErrorIs(t, err, ErrUnknownProduct)
}

func TestQuantityValidation(t *testing.T) {
	e := newTestEngine(t)

	for _, qty := range []int{0, -1} {
		_, err := e.PriceCart([]CartItem{{SKU: "custom-map-print-30x40cm", Quantity: qty}}, Options{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Reason, "quantity must be at least 1")
	}
}

func TestItemPriceOnlyUnitPrice(t *testing.T) {
	e := newTestEngine(t)

	price, err := e.PriceItem(CartItem{SKU: "custom-map-print-30x40cm", Quantity: 3}, Options{OnlyUnitPrice: true})
	require.NoError(t, err)
	require.Equal(t, int64(3900), price.Value)
	require.Equal(t, int64(3145), price.Net.Value)
}

func TestItemPriceGiftCardValue(t *testing.T) {
	e := newTestEngine(t)
	net := int64(4900)

	price, err := e.PriceItem(CartItem{SKU: "gift-card-value", Quantity: 1, Customisation: &Customisation{NetValue: &net}}, Options{})
	require.NoError(t, err)

	require.Equal(t, int64(4900), price.Value)
	require.Equal(t, int64(4900), price.Net.Value)
	require.Equal(t, []TaxLine{taxLine(0, 0, "0.00", "0,00 €")}, price.Taxes)
}

func ptr[T any](v T) *T { return &v }
