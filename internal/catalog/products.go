package catalog

import "github.com/shopspring/decimal"

func minor(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var (
	vat0  = decimal.Zero
	vat10 = decimal.NewFromInt(10)
	vat14 = decimal.NewFromInt(14)
	vat24 = decimal.NewFromInt(24)
	vat28 = decimal.NewFromInt(28)
)

// products is the source table. Prices are gross minor units per currency;
// JPY is a zero-decimal currency, so its values are whole yen.
// Non-live entries exist for tax-rate regression tests and never surface in
// the public listing.
var products = []Product{
	{
		SKU: "custom-map-print-30x40cm",
		Names: map[string]string{
			"en-US": "Map print 30x40cm",
			"fi-FI": "Karttajuliste 30x40cm",
		},
		Metadata:      map[string]string{"material": "paper", "size": "30x40cm"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(3900),
			"USD": minor(4490),
			"JPY": minor(4699),
			"AUD": minor(6490),
			"GBP": minor(3290),
			"CAD": minor(5490),
			"SEK": minor(41900),
			"DKK": minor(28900),
			"NOK": minor(39900),
		},
	},
	{
		SKU: "custom-map-print-50x70cm",
		Names: map[string]string{
			"en-US": "Map print 50x70cm",
			"fi-FI": "Karttajuliste 50x70cm",
		},
		Metadata:      map[string]string{"material": "paper", "size": "50x70cm"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(4900),
			"USD": minor(5490),
			"JPY": minor(5899),
			"AUD": minor(7900),
			"GBP": minor(4190),
			"CAD": minor(6900),
			"SEK": minor(51900),
			"DKK": minor(36900),
			"NOK": minor(49900),
		},
	},
	{
		SKU: "custom-map-print-70x100cm",
		Names: map[string]string{
			"en-US": "Map print 70x100cm",
			"fi-FI": "Karttajuliste 70x100cm",
		},
		Metadata:      map[string]string{"material": "paper", "size": "70x100cm"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(6900),
			"USD": minor(7490),
			"JPY": minor(8299),
			"AUD": minor(10900),
			"GBP": minor(5890),
			"CAD": minor(9900),
			"SEK": minor(73900),
			"DKK": minor(51900),
			"NOK": minor(69900),
		},
	},
	{
		SKU: "custom-map-print-12x18inch",
		Names: map[string]string{
			"en-US": "Map print 12x18inch",
			"fi-FI": "Karttajuliste 12x18inch",
		},
		Metadata:      map[string]string{"material": "paper", "size": "12x18inch"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(4190),
			"USD": minor(4490),
			"JPY": minor(5099),
			"AUD": minor(6490),
			"GBP": minor(3590),
			"CAD": minor(5900),
			"SEK": minor(44900),
			"DKK": minor(30900),
			"NOK": minor(42900),
		},
	},
	{
		SKU: "custom-map-print-18x24inch",
		Names: map[string]string{
			"en-US": "Map print 18x24inch",
			"fi-FI": "Karttajuliste 18x24inch",
		},
		Metadata:      map[string]string{"material": "paper", "size": "18x24inch"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(4900),
			"USD": minor(5490),
			"JPY": minor(5899),
			"AUD": minor(7900),
			"GBP": minor(4190),
			"CAD": minor(6900),
			"SEK": minor(51900),
			"DKK": minor(36900),
			"NOK": minor(49900),
		},
	},
	{
		SKU: "custom-map-print-24x36inch",
		Names: map[string]string{
			"en-US": "Map print 24x36inch",
			"fi-FI": "Karttajuliste 24x36inch",
		},
		Metadata:      map[string]string{"material": "paper", "size": "24x36inch"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(6900),
			"USD": minor(7490),
			"JPY": minor(8299),
			"AUD": minor(10900),
			"GBP": minor(5890),
			"CAD": minor(9900),
			"SEK": minor(73900),
			"DKK": minor(51900),
			"NOK": minor(69900),
		},
	},
	{
		SKU: "custom-map-plywood-30x40cm",
		Names: map[string]string{
			"en-US": "Plywood map 30x40cm",
			"fi-FI": "Vanerikartta 30x40cm",
		},
		Metadata:      map[string]string{"material": "birch plywood", "size": "30x40cm"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(7900),
			"USD": minor(8990),
			"JPY": minor(9499),
			"AUD": minor(12900),
			"GBP": minor(6690),
			"CAD": minor(11900),
			"SEK": minor(84900),
			"DKK": minor(58900),
			"NOK": minor(79900),
		},
	},
	{
		SKU: "custom-map-plywood-50x70cm",
		Names: map[string]string{
			"en-US": "Plywood map 50x70cm",
			"fi-FI": "Vanerikartta 50x70cm",
		},
		Metadata:      map[string]string{"material": "birch plywood", "size": "50x70cm"},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(9900),
			"USD": minor(10990),
			"JPY": minor(11899),
			"AUD": minor(15900),
			"GBP": minor(8390),
			"CAD": minor(14900),
			"SEK": minor(105900),
			"DKK": minor(73900),
			"NOK": minor(99900),
		},
	},
	{
		SKU: "physical-gift-card",
		Names: map[string]string{
			"en-US": "Premium gift card",
			"fi-FI": "Premium lahjakortti",
		},
		Live:          true,
		Shippable:     true,
		VATPercentage: vat24,
		DiscountClass: 1,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(690),
			"USD": minor(790),
			"JPY": minor(829),
			"AUD": minor(1090),
			"GBP": minor(590),
			"CAD": minor(990),
			"SEK": minor(7390),
			"DKK": minor(5190),
			"NOK": minor(6990),
		},
	},
	{
		SKU: "shipping-express",
		Names: map[string]string{
			"en-US": "Express shipping",
			"fi-FI": "Express-kuljetus",
		},
		Rules:         []Rule{{Type: RuleMaxQuantity, Payload: 1}},
		Live:          true,
		VATPercentage: vat24,
		DiscountClass: 1,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(0),
			"USD": minor(0),
			"JPY": minor(0),
			"AUD": minor(0),
			"GBP": minor(0),
			"CAD": minor(0),
			"SEK": minor(0),
			"DKK": minor(0),
			"NOK": minor(0),
		},
	},
	{
		SKU: "production-high-priority",
		Names: map[string]string{
			"en-US": "Priority production",
			"fi-FI": "Priority valmistus",
		},
		Rules:         []Rule{{Type: RuleMaxQuantity, Payload: 1}},
		Live:          true,
		VATPercentage: vat24,
		DiscountClass: 1,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(1500),
			"USD": minor(1690),
			"JPY": minor(1799),
			"AUD": minor(2390),
			"GBP": minor(1290),
			"CAD": minor(2190),
			"SEK": minor(15900),
			"DKK": minor(10900),
			"NOK": minor(14900),
		},
	},
	{
		SKU: "gift-card-value",
		Names: map[string]string{
			"en-US": "Gift card value",
			"fi-FI": "Lahjakortin arvo",
		},
		Rules: []Rule{{Type: RuleMinNetPrice, Payload: 1000}},
		Live:          true,
		VATPercentage: vat0,
		DiscountClass: 1,
		DynamicPrice:  true,
	},
	{
		SKU:           "test-product-vat-0",
		Names:         map[string]string{"en-US": "Test product VAT 0"},
		VATPercentage: vat0,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(1000),
			"USD": minor(1000),
		},
	},
	{
		SKU:           "test-product-vat-10",
		Names:         map[string]string{"en-US": "Test product VAT 10"},
		VATPercentage: vat10,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(1000),
			"USD": minor(1000),
		},
	},
	{
		SKU:           "test-product-vat-14",
		Names:         map[string]string{"en-US": "Test product VAT 14"},
		VATPercentage: vat14,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(1000),
			"USD": minor(1000),
		},
	},
	{
		SKU:           "test-product-vat-24",
		Names:         map[string]string{"en-US": "Test product VAT 24"},
		VATPercentage: vat24,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(1000),
			"USD": minor(1000),
		},
	},
	{
		SKU:           "test-map-30x40cm-vat-28",
		Names:         map[string]string{"en-US": "Test map 30x40cm VAT 28"},
		VATPercentage: vat28,
		GrossPrices: map[string]decimal.Decimal{
			"EUR": minor(3900),
			"USD": minor(4490),
		},
	},
}
