package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, perMinute int) (Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return Limiter{Client: client, PerMinute: perMinute}, mr
}

func quoteStub() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLimiterAllowsWithinLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3)
	handler := limiter.Middleware(quoteStub())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/price/cart", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
		want := strconv.Itoa(3 - (i + 1))
		if got := rr.Header().Get("X-RateLimit-Remaining"); got != want {
			t.Fatalf("request %d: expected remaining %s, got %s", i+1, want, got)
		}
	}
}

func TestLimiterBlocksExcessRequests(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1)
	handler := limiter.Middleware(quoteStub())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/price/cart", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req.Clone(req.Context()))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", rr.Code)
	}

	blocked := httptest.NewRecorder()
	handler.ServeHTTP(blocked, req.Clone(req.Context()))
	if blocked.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second request, got %d", blocked.Code)
	}
	if blocked.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	if !strings.Contains(blocked.Body.String(), "RATE_LIMITED") {
		t.Fatalf("expected error envelope, got %q", blocked.Body.String())
	}

	// the window key expires after a minute, freeing the budget
	mr.FastForward(time.Minute + time.Second)
	again := httptest.NewRecorder()
	handler.ServeHTTP(again, req.Clone(req.Context()))
	if again.Code != http.StatusOK {
		t.Fatalf("expected request after window to pass, got %d", again.Code)
	}
}

func TestLimiterCountsClientsSeparately(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)
	handler := limiter.Middleware(quoteStub())

	for _, ip := range []string{"203.0.113.9", "203.0.113.10"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/price/cart", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("client %s: expected 200, got %d", ip, rr.Code)
		}
	}
}

func TestLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer func() { _ = client.Close() }()

	called := false
	limiter := Limiter{Client: client, PerMinute: 1, OnError: func(error) { called = true }}
	handler := limiter.Middleware(quoteStub())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/price/cart", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected request to proceed when redis is down, got %d", rr.Code)
	}
	if !called {
		t.Fatal("expected OnError callback")
	}
}

func TestLimiterDisabledWithoutClient(t *testing.T) {
	limiter := Limiter{PerMinute: 1}
	handler := limiter.Middleware(quoteStub())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/price/cart", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-RateLimit-Limit") != "" {
		t.Fatal("expected no rate limit headers when disabled")
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "forwarded chain", forwarded: "203.0.113.9, 10.0.0.1", want: "203.0.113.9"},
		{name: "real ip", realIP: "198.51.100.4", want: "198.51.100.4"},
		{name: "socket address", remoteAddr: "192.0.2.7:51234", want: "192.0.2.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			if tc.remoteAddr != "" {
				req.RemoteAddr = tc.remoteAddr
			}
			if got := ClientIP(req); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
