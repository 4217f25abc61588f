package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/pricing-api/internal/common"
	"github.com/noah-isme/pricing-api/internal/obs"
	"github.com/noah-isme/pricing-api/internal/quotecache"
)

// Handler exposes the pricing endpoints.
type Handler struct {
	engine   *Engine
	cache    *quotecache.Cache
	validate *validator.Validate
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Engine   *Engine
	Cache    *quotecache.Cache
	Validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	return &Handler{engine: cfg.Engine, cache: cfg.Cache, validate: v}
}

// RequestOptions is the request fragment shared by both pricing endpoints.
type RequestOptions struct {
	ShipToCountry         string           `json:"shipToCountry,omitempty" validate:"omitempty,len=2"`
	Currency              string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	Promotion             *Promotion       `json:"promotion,omitempty"`
	IgnorePromotionExpiry bool             `json:"ignorePromotionExpiry,omitempty"`
	TaxPercentage         *decimal.Decimal `json:"taxPercentage,omitempty"`
}

func (p RequestOptions) toOptions() Options {
	return Options{
		ShipToCountry:         p.ShipToCountry,
		Currency:              p.Currency,
		Promotion:             p.Promotion,
		IgnorePromotionExpiry: p.IgnorePromotionExpiry,
		TaxPercentage:         p.TaxPercentage,
	}
}

type cartRequest struct {
	Cart []CartItem `json:"cart" validate:"required,dive"`
	RequestOptions
}

type itemRequest struct {
	Item          CartItem `json:"item" validate:"required"`
	OnlyUnitPrice bool     `json:"onlyUnitPrice,omitempty"`
	RequestOptions
}

// CartPrice handles POST /api/v1/price/cart.
func (h *Handler) CartPrice(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.Error(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error(), nil)
		return
	}
	h.respond(w, r, "cart", req, req.Promotion, func() (Price, error) {
		return h.engine.PriceCart(req.Cart, req.toOptions())
	})
}

// ItemPrice handles POST /api/v1/price/item.
func (h *Handler) ItemPrice(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.Error(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error(), nil)
		return
	}
	opts := req.toOptions()
	opts.OnlyUnitPrice = req.OnlyUnitPrice
	h.respond(w, r, "item", req, req.Promotion, func() (Price, error) {
		return h.engine.PriceItem(req.Item, opts)
	})
}

// respond serves the price from the quote cache when possible, computing and
// storing it otherwise. Cache failures never fail the request.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, endpoint string, req any, promo *Promotion, compute func() (Price, error)) {
	start := time.Now()

	var key string
	if canonical, err := json.Marshal(req); err == nil {
		key = quotecache.Key(canonical)
	}

	var cached Price
	if found, err := h.cache.Get(r.Context(), key, &cached); err == nil && found {
		if obs.QuoteCacheTotal != nil {
			obs.QuoteCacheTotal.WithLabelValues("hit").Inc()
		}
		h.observe(endpoint, "ok", start)
		common.Data(w, http.StatusOK, cached)
		return
	}
	if obs.QuoteCacheTotal != nil {
		obs.QuoteCacheTotal.WithLabelValues("miss").Inc()
	}

	price, err := compute()
	if err != nil {
		h.observe(endpoint, "error", start)
		h.writeError(w, err)
		return
	}
	_ = h.cache.Set(r.Context(), key, price)

	if promo != nil && obs.PromotionAppliedTotal != nil {
		obs.PromotionAppliedTotal.WithLabelValues(string(promo.Type)).Inc()
	}
	h.observe(endpoint, "ok", start)
	common.Data(w, http.StatusOK, price)
}

func (h *Handler) observe(endpoint, result string, start time.Time) {
	if obs.QuoteRequestsTotal != nil {
		obs.QuoteRequestsTotal.WithLabelValues(endpoint, result).Inc()
	}
	if obs.QuoteDuration != nil {
		obs.QuoteDuration.WithLabelValues(endpoint).Observe(obs.DurationMillis(time.Since(start)))
	}
}

// writeDecodeError distinguishes cart lines that decoded but failed
// validation, such as a fractional quantity, from genuinely malformed JSON.
func (h *Handler) writeDecodeError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		h.writeError(w, err)
		return
	}
	common.Error(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err == nil {
		common.Error(w, http.StatusInternalServerError, "INTERNAL", "unknown error", nil)
		return
	}
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		common.Error(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error(),
			map[string]any{"sku": vErr.SKU, "index": vErr.Index})
	case errors.Is(err, ErrUnknownProduct):
		common.Error(w, http.StatusNotFound, "UNKNOWN_PRODUCT", err.Error(), nil)
	case errors.Is(err, ErrPromotionExpired):
		common.Error(w, http.StatusUnprocessableEntity, "PROMOTION_EXPIRED", err.Error(), nil)
	case errors.Is(err, ErrPromotionCurrencyMismatch):
		common.Error(w, http.StatusUnprocessableEntity, "PROMOTION_CURRENCY_MISMATCH", err.Error(), nil)
	case errors.Is(err, ErrInvalidPromotionType):
		common.Error(w, http.StatusUnprocessableEntity, "INVALID_PROMOTION_TYPE", err.Error(), nil)
	case errors.Is(err, ErrInvalidCurrency):
		common.Error(w, http.StatusUnprocessableEntity, "INVALID_CURRENCY", err.Error(), nil)
	default:
		common.Error(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}
