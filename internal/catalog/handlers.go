package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/pricing-api/internal/common"
	"github.com/noah-isme/pricing-api/internal/currency"
	"github.com/noah-isme/pricing-api/internal/money"
)

// Handler exposes public catalog endpoints.
type Handler struct {
	catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// productView is the wire shape for a catalog entry.
type productView struct {
	SKU           string               `json:"sku"`
	Name          string               `json:"name"`
	Metadata      map[string]string    `json:"metadata,omitempty"`
	Shippable     bool                 `json:"shippable"`
	VATPercentage string               `json:"vatPercentage"`
	DiscountClass int                  `json:"discountClass"`
	DynamicPrice  bool                 `json:"dynamicPrice,omitempty"`
	Rules         []ruleView           `json:"rules,omitempty"`
	GrossPrices   map[string]priceView `json:"grossPrices,omitempty"`
}

type ruleView struct {
	Type    RuleType `json:"type"`
	Payload int64    `json:"payload"`
}

type priceView struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

func toView(p Product, locale string) productView {
	v := productView{
		SKU:           p.SKU,
		Name:          p.Name(locale),
		Metadata:      p.Metadata,
		Shippable:     p.Shippable,
		VATPercentage: p.VATPercentage.String(),
		DiscountClass: p.DiscountClass,
		DynamicPrice:  p.DynamicPrice,
	}
	for _, r := range p.Rules {
		v.Rules = append(v.Rules, ruleView{Type: r.Type, Payload: r.Payload})
	}
	if len(p.GrossPrices) > 0 {
		v.GrossPrices = make(map[string]priceView, len(p.GrossPrices))
		for cur, gross := range p.GrossPrices {
			value := money.MinorUnits(gross)
			v.GrossPrices[cur] = priceView{Value: value, Label: currency.Label(value, cur)}
		}
	}
	return v
}

// Products handles GET /api/v1/products. Only live products are listed.
// An optional locale query parameter selects the product name language.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	live := h.catalog.Live()
	views := make([]productView, 0, len(live))
	for _, p := range live {
		views = append(views, toView(p, locale))
	}
	common.Data(w, http.StatusOK, views)
}

// ProductDetail handles GET /api/v1/products/{sku}.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	p, ok := h.catalog.Get(sku)
	if !ok || !p.Live {
		common.Error(w, http.StatusNotFound, "UNKNOWN_PRODUCT", "no such product: "+sku, nil)
		return
	}
	common.Data(w, http.StatusOK, toView(p, r.URL.Query().Get("locale")))
}

// Currencies handles GET /api/v1/currencies.
func (h *Handler) Currencies(w http.ResponseWriter, r *http.Request) {
	common.Data(w, http.StatusOK, h.catalog.SupportedCurrencies())
}
