package pricing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// PromotionType is the closed set of supported promotion kinds.
type PromotionType string

const (
	// PromotionFixed grants a fixed amount in a single currency, consumed
	// across eligible items in cart order.
	PromotionFixed PromotionType = "FIXED"
	// PromotionPercentage grants a factor of each eligible item's gross
	// value. Negative factors act as surcharges.
	PromotionPercentage PromotionType = "PERCENTAGE"
)

// Promotion describes a discount code applied to a cart.
type Promotion struct {
	Type       PromotionType   `json:"type" validate:"required"`
	Value      decimal.Decimal `json:"value"`
	Currency   string          `json:"currency,omitempty"`
	Code       string          `json:"promotionCode"`
	HasExpired bool            `json:"hasExpired"`
}

// discountClass returns the product class this promotion may discount.
// Platinum codes cover class 1 products, everything else covers class 0.
func (p Promotion) discountClass() int {
	if strings.HasPrefix(p.Code, "PLATINUM") {
		return 1
	}
	return 0
}

// Customisation carries caller-supplied pricing input for dynamic-price
// products, such as the chosen value of a gift card in minor units (net).
type Customisation struct {
	NetValue *int64 `json:"netValue,omitempty"`
}

// CartItem is a single line in a cart request.
type CartItem struct {
	SKU           string         `json:"sku" validate:"required"`
	Quantity      int            `json:"quantity"`
	Customisation *Customisation `json:"customisation,omitempty"`
}

// UnmarshalJSON accepts any JSON number for the quantity but surfaces a
// fractional one as a validation failure rather than a malformed payload.
func (c *CartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		SKU           string         `json:"sku"`
		Quantity      json.Number    `json:"quantity"`
		Customisation *Customisation `json:"customisation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.SKU = raw.SKU
	c.Customisation = raw.Customisation
	c.Quantity = 0
	if raw.Quantity == "" {
		return nil
	}
	n, err := raw.Quantity.Int64()
	if err != nil {
		f, ferr := raw.Quantity.Float64()
		if ferr != nil || f != math.Trunc(f) {
			return &ValidationError{SKU: raw.SKU, Reason: "quantity must be a whole number"}
		}
		n = int64(f)
	}
	c.Quantity = int(n)
	return nil
}

// Options control a pricing run. Zero values fall back to the engine's home
// country and currency.
type Options struct {
	ShipToCountry         string
	Currency              string
	Promotion             *Promotion
	IgnorePromotionExpiry bool
	// TaxPercentage overrides the destination-derived rate when set.
	TaxPercentage *decimal.Decimal
	// OnlyUnitPrice prices a single unit regardless of the item quantity.
	OnlyUnitPrice bool
}

// Amount is a rounded monetary value with display metadata.
type Amount struct {
	Value      int64  `json:"value"`
	HumanValue string `json:"humanValue"`
	Label      string `json:"label"`
}

// TaxRate is the exact percentage a tax line was collected at. It marshals
// as a bare JSON number so fractional rates, such as a 25.5% override,
// reach the caller unrounded.
type TaxRate string

// RateFromDecimal canonicalises a percentage into a TaxRate.
func RateFromDecimal(p decimal.Decimal) TaxRate {
	return TaxRate(p.String())
}

// MarshalJSON renders the rate as a JSON number.
func (r TaxRate) MarshalJSON() ([]byte, error) {
	if r == "" {
		return []byte("0"), nil
	}
	return []byte(r), nil
}

// UnmarshalJSON reads the rate back from a JSON number or string.
func (r *TaxRate) UnmarshalJSON(data []byte) error {
	*r = TaxRate(strings.Trim(string(data), `"`))
	return nil
}

// TaxLine is the rounded tax collected at a single percentage.
type TaxLine struct {
	TaxPercentage TaxRate `json:"taxPercentage"`
	Value         int64   `json:"value"`
	HumanValue    string  `json:"humanValue"`
	Label         string  `json:"label"`
}

// Price is the rounded result of a pricing run. Value is the gross total in
// minor units and always equals Net.Value plus the sum of the tax lines.
type Price struct {
	Value               int64     `json:"value"`
	HumanValue          string    `json:"humanValue"`
	Currency            string    `json:"currency"`
	ZeroDecimalCurrency bool      `json:"zeroDecimalCurrency"`
	Label               string    `json:"label"`
	Net                 Amount    `json:"net"`
	Taxes               []TaxLine `json:"taxes"`
	Discount            *Amount   `json:"discount,omitempty"`
}
