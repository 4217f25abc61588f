package pricing

import (
	"fmt"

	"github.com/noah-isme/pricing-api/internal/catalog"
)

// ruleFunc evaluates one declarative product rule against a resolved item.
// It returns an empty string when the rule holds.
type ruleFunc func(rule catalog.Rule, item resolvedItem) string

var ruleFuncs = map[catalog.RuleType]ruleFunc{
	catalog.RuleMaxQuantity: func(rule catalog.Rule, item resolvedItem) string {
		if int64(item.Quantity) > rule.Payload {
			return fmt.Sprintf("max allowed quantity is %d but found %d", rule.Payload, item.Quantity)
		}
		return ""
	},
	catalog.RuleMinNetPrice: func(rule catalog.Rule, item resolvedItem) string {
		// Only dynamic-price products carry a caller-supplied net value.
		if !item.product.DynamicPrice {
			return ""
		}
		if item.Customisation == nil || item.Customisation.NetValue == nil {
			return ""
		}
		if *item.Customisation.NetValue < rule.Payload {
			return fmt.Sprintf("net price must be at least %d", rule.Payload)
		}
		return ""
	},
}

// checkRules evaluates every rule declared on the item's product.
func checkRules(item resolvedItem) *ValidationError {
	for _, rule := range item.product.Rules {
		fn, ok := ruleFuncs[rule.Type]
		if !ok {
			return &ValidationError{SKU: item.SKU, Index: item.index, Reason: fmt.Sprintf("unknown rule type %q", rule.Type)}
		}
		if reason := fn(rule, item); reason != "" {
			return &ValidationError{SKU: item.SKU, Index: item.index, Reason: reason}
		}
	}
	return nil
}
