package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, nil)
	rl.now = func() time.Time { return now }

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.2"), "clients are limited independently")

	now = now.Add(30 * time.Second)
	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, nil)
	for i := 0; i < 100; i++ {
		require.True(t, rl.Allow("10.0.0.1"))
	}
	require.Zero(t, rl.Len())
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, nil)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	require.Equal(t, 2, rl.Len())

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.Allow("10.0.0.3")
	require.Equal(t, 1, rl.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, nil)
	handler := rl.Middleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.9:4000"

	rec := httptest.NewRecorder()
	handler(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	rl := NewRateLimiter(2, nil)
	handler := rl.Middleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code == http.StatusNoContent {
			allowed++
		}
	}
	require.Equal(t, 2, allowed)
	require.Equal(t, 1, rl.Len())
}

func TestClientIP(t *testing.T) {
	trusted := config.TrustedProxies{netip.MustParsePrefix("10.0.0.0/8")}
	rl := NewRateLimiter(1, trusted)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	require.Equal(t, "192.0.2.1", rl.clientIP(req))

	// untrusted peer: the header is ignored
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	require.Equal(t, "192.0.2.1", rl.clientIP(req))

	// trusted proxy: the rightmost hop that is not a proxy is the client
	req.RemoteAddr = "10.0.0.5:5555"
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.9, 10.0.0.4")
	require.Equal(t, "203.0.113.9", rl.clientIP(req))

	req.Header.Del("X-Forwarded-For")
	require.Equal(t, "10.0.0.5", rl.clientIP(req))

	req.Header.Set("X-Forwarded-For", "garbage")
	require.Equal(t, "10.0.0.5", rl.clientIP(req))
}
