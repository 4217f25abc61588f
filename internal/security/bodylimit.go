package security

import (
	"net/http"

	"github.com/noah-isme/pricing-api/internal/common"
)

// BodyLimit caps request payloads. Cart payloads are small; anything larger
// than the limit is rejected before it reaches the JSON decoder.
type BodyLimit struct {
	Max int64
}

// Middleware rejects declared-oversized payloads with the canonical error
// envelope and caps undeclared ones so a read past the limit fails.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		if r.ContentLength > b.Max {
			common.Error(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body exceeds limit", nil)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, b.Max)
		next.ServeHTTP(w, r)
	})
}
