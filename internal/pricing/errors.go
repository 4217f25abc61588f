package pricing

import (
	"errors"
	"fmt"
)

// ErrUnknownProduct is returned when a cart references a SKU that does not
// exist in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// ErrPromotionExpired is returned when the promotion has expired and expiry
// is not explicitly ignored.
var ErrPromotionExpired = errors.New("promotion has expired")

// ErrPromotionCurrencyMismatch is returned when a fixed promotion is bound to
// a different currency than the one requested.
var ErrPromotionCurrencyMismatch = errors.New("promotion currency mismatch")

// ErrInvalidPromotionType is returned for promotion types outside the closed
// FIXED/PERCENTAGE set.
var ErrInvalidPromotionType = errors.New("invalid promotion type")

// ErrInvalidCurrency is returned when the requested currency is not offered
// by the catalog.
var ErrInvalidCurrency = errors.New("unsupported currency")

// ValidationError reports a structurally invalid cart item or a violated
// product rule, carrying the offending item's SKU and position.
type ValidationError struct {
	SKU    string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cart item %s (index %d): %s", e.SKU, e.Index, e.Reason)
}
