// Package pricing computes exact cart prices: catalog resolution, cart
// validation, promotion discounts, per-rate tax accumulation and the single
// rounding pass at the end.
//
// Intermediate values are never rounded. The final pass rounds the gross
// total first, rounds each per-rate tax independently, and derives the net
// total by subtraction so that net + taxes always equals gross.
package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/catalog"
	"github.com/noah-isme/pricing-api/internal/currency"
	"github.com/noah-isme/pricing-api/internal/money"
	"github.com/noah-isme/pricing-api/internal/tax"
)

// Engine prices carts against a catalog. HomeCountry and HomeCurrency fill
// in request options that were left empty.
type Engine struct {
	Catalog      *catalog.Catalog
	HomeCountry  string
	HomeCurrency string
}

// NewEngine constructs an Engine.
func NewEngine(c *catalog.Catalog, homeCountry, homeCurrency string) *Engine {
	return &Engine{Catalog: c, HomeCountry: homeCountry, HomeCurrency: homeCurrency}
}

// resolvedItem is a cart item joined with its catalog product. Dynamic-price
// products carry a copy of the product holding the caller-supplied price in
// the request currency.
type resolvedItem struct {
	CartItem
	index          int
	product        catalog.Product
	grossDiscounts map[string]decimal.Decimal
}

// cartTotals holds exact, unrounded aggregates. Tax values are grouped by
// the exact percentage they were collected at.
type cartTotals struct {
	gross         decimal.Decimal
	grossDiscount decimal.Decimal
	taxByPercent  map[string]decimal.Decimal
	percents      map[string]decimal.Decimal
}

// SupportedCurrencies returns the catalog's supported currency codes.
func (e *Engine) SupportedCurrencies() []string {
	return e.Catalog.SupportedCurrencies()
}

// PriceCart prices a whole cart.
func (e *Engine) PriceCart(items []CartItem, opts Options) (Price, error) {
	opts = e.withDefaults(opts)

	if !e.Catalog.IsSupportedCurrency(opts.Currency) {
		return Price{}, fmt.Errorf("%s: %w", opts.Currency, ErrInvalidCurrency)
	}

	resolved, err := e.resolveItems(items, opts)
	if err != nil {
		return Price{}, err
	}
	discounted, err := applyPromotion(resolved, opts)
	if err != nil {
		return Price{}, err
	}
	totals, err := exactTotals(discounted, opts)
	if err != nil {
		return Price{}, err
	}
	return assemble(totals, opts), nil
}

// PriceItem prices a single item. With OnlyUnitPrice set the item's quantity
// is ignored and one unit is priced.
func (e *Engine) PriceItem(item CartItem, opts Options) (Price, error) {
	if opts.OnlyUnitPrice {
		item.Quantity = 1
	}
	return e.PriceCart([]CartItem{item}, opts)
}

func (e *Engine) withDefaults(opts Options) Options {
	if opts.ShipToCountry == "" {
		opts.ShipToCountry = e.HomeCountry
	}
	if opts.Currency == "" {
		opts.Currency = e.HomeCurrency
	}
	return opts
}

// resolveItems joins cart items with catalog products, validates them, and
// prices dynamic products from the caller-supplied net value.
func (e *Engine) resolveItems(items []CartItem, opts Options) ([]resolvedItem, error) {
	resolved := make([]resolvedItem, 0, len(items))
	for i, item := range items {
		product, ok := e.Catalog.Get(item.SKU)
		if !ok {
			return nil, fmt.Errorf("no such product with sku %s: %w", item.SKU, ErrUnknownProduct)
		}
		ri := resolvedItem{CartItem: item, index: i, product: product}

		if item.Quantity < 1 {
			return nil, &ValidationError{SKU: item.SKU, Index: i, Reason: "quantity must be at least 1"}
		}
		if product.DynamicPrice {
			if item.Customisation == nil {
				return nil, &ValidationError{SKU: item.SKU, Index: i, Reason: "no customisation found for dynamic priced item"}
			}
			if item.Customisation.NetValue == nil {
				return nil, &ValidationError{SKU: item.SKU, Index: i, Reason: "no customisation.netValue found for dynamic priced item"}
			}
		}
		if err := checkRules(ri); err != nil {
			return nil, err
		}

		if product.DynamicPrice {
			net := decimal.NewFromInt(*item.Customisation.NetValue)
			priced := product
			priced.NetPrices = map[string]decimal.Decimal{opts.Currency: net}
			priced.GrossPrices = map[string]decimal.Decimal{
				opts.Currency: tax.GrossFromNet(net, product.VATPercentage),
			}
			ri.product = priced
		}
		resolved = append(resolved, ri)
	}
	return resolved, nil
}

// taxPercent resolves the rate an item is taxed at.
func taxPercent(p catalog.Product, opts Options) decimal.Decimal {
	if opts.TaxPercentage != nil {
		return *opts.TaxPercentage
	}
	return tax.ApplicablePercent(p.VATPercentage, opts.ShipToCountry)
}

// exactTotals accumulates unrounded gross, discount and per-rate tax sums.
// The net total is deliberately absent: it is derived from rounded values
// during assembly.
func exactTotals(items []resolvedItem, opts Options) (cartTotals, error) {
	totals := cartTotals{
		gross:         decimal.Zero,
		grossDiscount: decimal.Zero,
		taxByPercent:  make(map[string]decimal.Decimal),
		percents:      make(map[string]decimal.Decimal),
	}
	for _, item := range items {
		unitGross, ok := item.product.GrossPrices[opts.Currency]
		if !ok {
			return cartTotals{}, fmt.Errorf("item %s has no price in %s: %w", item.SKU, opts.Currency, ErrInvalidCurrency)
		}
		percent := taxPercent(item.product, opts)

		itemGross := unitGross.Mul(decimal.NewFromInt(int64(item.Quantity)))
		discount := decimal.Zero
		if d, ok := item.grossDiscounts[opts.Currency]; ok {
			discount = d
		}
		itemGross = itemGross.Sub(discount)
		itemNet := tax.NetFromGross(itemGross, percent)
		itemTax := tax.Value(itemNet, percent)

		key := percent.String()
		if existing, ok := totals.taxByPercent[key]; ok {
			totals.taxByPercent[key] = existing.Add(itemTax)
		} else {
			totals.taxByPercent[key] = itemTax
			totals.percents[key] = percent
		}
		totals.gross = totals.gross.Add(itemGross)
		totals.grossDiscount = totals.grossDiscount.Add(discount)
	}
	return totals, nil
}

// assemble performs the single rounding pass and builds the wire result.
// Gross is rounded first, each tax line is rounded independently, and net is
// gross minus the rounded taxes. Tax lines are sorted by ascending rate.
func assemble(totals cartTotals, opts Options) Price {
	keys := make([]string, 0, len(totals.percents))
	for key := range totals.percents {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return totals.percents[keys[i]].Cmp(totals.percents[keys[j]]) < 0
	})

	roundedGross := money.MinorUnits(totals.gross)
	taxes := make([]TaxLine, 0, len(keys))
	var taxTotal int64
	for _, key := range keys {
		value := money.MinorUnits(totals.taxByPercent[key])
		taxTotal += value
		taxes = append(taxes, TaxLine{
			TaxPercentage: RateFromDecimal(totals.percents[key]),
			Value:         value,
			HumanValue:    currency.HumanValue(value, opts.Currency),
			Label:         currency.Label(value, opts.Currency),
		})
	}
	net := roundedGross - taxTotal

	price := Price{
		Value:               roundedGross,
		HumanValue:          currency.HumanValue(roundedGross, opts.Currency),
		Currency:            opts.Currency,
		ZeroDecimalCurrency: currency.IsZeroDecimal(opts.Currency),
		Label:               currency.Label(roundedGross, opts.Currency),
		Net:                 amount(net, opts.Currency),
		Taxes:               taxes,
	}
	if !totals.grossDiscount.IsZero() {
		discount := amount(money.MinorUnits(totals.grossDiscount), opts.Currency)
		price.Discount = &discount
	}
	return price
}

func amount(value int64, code string) Amount {
	return Amount{
		Value:      value,
		HumanValue: currency.HumanValue(value, code),
		Label:      currency.Label(value, code),
	}
}
