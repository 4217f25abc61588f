// Package ratelimit throttles the public pricing endpoints per client using
// a Redis-backed sliding window.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/pricing-api/internal/common"
)

const defaultPrefix = "pricing:ratelimit:"

// Limiter caps the number of requests a client may make per minute. A nil
// client or a non-positive limit disables enforcement.
type Limiter struct {
	Client    *redis.Client
	Prefix    string
	PerMinute int
	// OnError is notified when Redis is unreachable. The request is let
	// through so quoting degrades open rather than closed.
	OnError func(error)
}

// Middleware enforces the per-client limit and annotates responses with
// X-RateLimit headers.
func (l Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Client == nil || l.PerMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		allowed, remaining, reset, err := l.allow(r.Context(), ClientIP(r))
		if err != nil {
			if l.OnError != nil {
				l.OnError(err)
			}
			next.ServeHTTP(w, r)
			return
		}

		headers := w.Header()
		headers.Set("X-RateLimit-Limit", strconv.Itoa(l.PerMinute))
		headers.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		headers.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			retryAfter := int(time.Until(reset).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			headers.Set("Retry-After", strconv.Itoa(retryAfter))
			common.Error(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many pricing requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow records one request for the client and reports whether it fits in
// the current one-minute window.
func (l Limiter) allow(ctx context.Context, client string) (allowed bool, remaining int, reset time.Time, err error) {
	now := time.Now()
	reset = now.Add(time.Minute)
	key := l.prefix() + client

	pipe := l.Client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(now.Add(-time.Minute).UnixNano(), 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err = pipe.Exec(ctx); err != nil {
		return false, 0, reset, err
	}

	used := int(count.Val())
	remaining = l.PerMinute - used
	if remaining < 0 {
		remaining = 0
	}
	return used <= l.PerMinute, remaining, reset, nil
}

func (l Limiter) prefix() string {
	if l.Prefix == "" {
		return defaultPrefix
	}
	return l.Prefix
}

// ClientIP resolves the address requests are counted against, preferring
// proxy-forwarded headers over the socket address.
func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
