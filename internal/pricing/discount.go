package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/money"
)

// applyPromotion attaches per-currency gross discounts to eligible items.
// Fixed promotions consume their budget across items in cart order; the
// budget is the promotion value rounded to whole minor units. Percentage
// promotions apply the factor per currency, capped at the item's gross value
// unless the factor is negative (a surcharge).
func applyPromotion(items []resolvedItem, opts Options) ([]resolvedItem, error) {
	promo := opts.Promotion
	if promo == nil {
		return items, nil
	}

	if promo.Type != PromotionFixed && promo.Type != PromotionPercentage {
		return nil, fmt.Errorf("%q: %w", promo.Type, ErrInvalidPromotionType)
	}
	if promo.Type != PromotionPercentage && promo.Currency != opts.Currency {
		return nil, fmt.Errorf("promotion currency %s mismatches the requested currency %s: %w",
			promo.Currency, opts.Currency, ErrPromotionCurrencyMismatch)
	}
	if !opts.IgnorePromotionExpiry && promo.HasExpired {
		return nil, fmt.Errorf("promotion %s: %w", promo.Code, ErrPromotionExpired)
	}

	promoClass := promo.discountClass()
	budgetLeft := money.RoundMinor(promo.Value)

	out := make([]resolvedItem, 0, len(items))
	for _, item := range items {
		if item.product.DiscountClass > promoClass {
			out = append(out, item)
			continue
		}
		switch promo.Type {
		case PromotionFixed:
			itemGross := item.product.GrossPrices[promo.Currency].Mul(decimal.NewFromInt(int64(item.Quantity)))
			discount := money.Min(budgetLeft, itemGross)
			budgetLeft = budgetLeft.Sub(discount)
			item.grossDiscounts = map[string]decimal.Decimal{promo.Currency: discount}
		case PromotionPercentage:
			discounts := make(map[string]decimal.Decimal, len(item.product.GrossPrices))
			for cur, unitGross := range item.product.GrossPrices {
				itemGross := unitGross.Mul(decimal.NewFromInt(int64(item.Quantity)))
				discounts[cur] = money.Min(itemGross.Mul(promo.Value), itemGross)
			}
			item.grossDiscounts = discounts
		}
		out = append(out, item)
	}
	return out, nil
}
