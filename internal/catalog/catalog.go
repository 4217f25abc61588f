// Package catalog exposes the static product table consumed by the pricing
// pipeline. The catalog is built once at startup: whichever price family a
// product declares (gross or net) is completed via the tax engine, and all
// live, fixed-price products are validated to offer the same currencies.
// After construction the catalog is read-only.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/tax"
)

// DefaultLocale is used for product names when no locale matches.
const DefaultLocale = "en-US"

// RuleType identifies a declarative product rule.
type RuleType string

const (
	// RuleMaxQuantity caps the quantity a single cart item may carry.
	RuleMaxQuantity RuleType = "MAX_QUANTITY"
	// RuleMinNetPrice sets a floor on an item's net value in minor units.
	RuleMinNetPrice RuleType = "MIN_NET_PRICE"
)

// Rule is a declarative constraint attached to a product.
type Rule struct {
	Type    RuleType
	Payload int64
}

// Product is a single catalog entry. Prices are exact decimals in minor
// units, keyed by ISO currency code.
type Product struct {
	SKU           string
	Names         map[string]string
	Metadata      map[string]string
	Live          bool
	Shippable     bool
	VATPercentage decimal.Decimal
	DiscountClass int
	DynamicPrice  bool
	Rules         []Rule
	GrossPrices   map[string]decimal.Decimal
	NetPrices     map[string]decimal.Decimal
}

// Name returns the product name for the locale, falling back to the default.
func (p Product) Name(locale string) string {
	if name, ok := p.Names[locale]; ok {
		return name
	}
	return p.Names[DefaultLocale]
}

// Catalog is the immutable product table.
type Catalog struct {
	bySKU      map[string]Product
	live       []Product
	currencies []string
}

// New builds the catalog from the built-in product table.
func New() (*Catalog, error) {
	return build(products)
}

func build(source []Product) (*Catalog, error) {
	c := &Catalog{bySKU: make(map[string]Product, len(source))}
	for _, p := range source {
		derived, err := derivePrices(p)
		if err != nil {
			return nil, err
		}
		if _, exists := c.bySKU[derived.SKU]; exists {
			return nil, fmt.Errorf("catalog: duplicate sku %q", derived.SKU)
		}
		c.bySKU[derived.SKU] = derived
		if derived.Live {
			c.live = append(c.live, derived)
		}
	}
	currencies, err := consistentCurrencies(c.live)
	if err != nil {
		return nil, err
	}
	c.currencies = currencies
	return c, nil
}

// derivePrices completes the missing price family via the tax engine.
func derivePrices(p Product) (Product, error) {
	if p.DynamicPrice {
		return p, nil
	}
	switch {
	case p.GrossPrices != nil:
		p.NetPrices = make(map[string]decimal.Decimal, len(p.GrossPrices))
		for cur, gross := range p.GrossPrices {
			p.NetPrices[cur] = tax.NetFromGross(gross, p.VATPercentage)
		}
	case p.NetPrices != nil:
		p.GrossPrices = make(map[string]decimal.Decimal, len(p.NetPrices))
		for cur, net := range p.NetPrices {
			p.GrossPrices[cur] = tax.GrossFromNet(net, p.VATPercentage)
		}
	default:
		return p, fmt.Errorf("catalog: product %q has no prices", p.SKU)
	}
	return p, nil
}

// consistentCurrencies validates that every live, fixed-price product offers
// the same currency set and returns that set sorted.
func consistentCurrencies(live []Product) ([]string, error) {
	var reference []string
	var referenceSKU string
	for _, p := range live {
		if p.DynamicPrice {
			continue
		}
		currencies := make([]string, 0, len(p.GrossPrices))
		for cur := range p.GrossPrices {
			currencies = append(currencies, cur)
		}
		sort.Strings(currencies)
		if reference == nil {
			reference = currencies
			referenceSKU = p.SKU
			continue
		}
		if len(currencies) != len(reference) {
			return nil, inconsistencyError(referenceSKU, p.SKU)
		}
		for i := range currencies {
			if currencies[i] != reference[i] {
				return nil, inconsistencyError(referenceSKU, p.SKU)
			}
		}
	}
	return reference, nil
}

func inconsistencyError(a, b string) error {
	return fmt.Errorf("catalog: inconsistent currency definitions in products %s and %s", a, b)
}

// Get looks up a product by SKU.
func (c *Catalog) Get(sku string) (Product, bool) {
	p, ok := c.bySKU[sku]
	return p, ok
}

// Live returns the live products sorted by SKU.
func (c *Catalog) Live() []Product {
	out := make([]Product, len(c.live))
	copy(out, c.live)
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

// SupportedCurrencies returns the currencies offered by every live,
// fixed-price product, sorted alphabetically.
func (c *Catalog) SupportedCurrencies() []string {
	out := make([]string, len(c.currencies))
	copy(out, c.currencies)
	return out
}

// IsSupportedCurrency reports whether the code is offered, ignoring case.
func (c *Catalog) IsSupportedCurrency(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, cur := range c.currencies {
		if cur == code {
			return true
		}
	}
	return false
}
