package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(2)

	allowed, remaining, _ := rl.CheckAndRecord("203.0.113.10")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining, _ = rl.CheckAndRecord("203.0.113.10")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, _ = rl.CheckAndRecord("203.0.113.10")
	assert.False(t, allowed)
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1)

	allowed, _, _ := rl.CheckAndRecord("203.0.113.10")
	require.True(t, allowed)

	allowed, _, _ = rl.CheckAndRecord("203.0.113.11")
	assert.True(t, allowed)
}

func TestWithRateLimitReturns429(t *testing.T) {
	rl := NewRateLimiter(1)
	handler := withRateLimit(rl, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/find-office", nil)
	req.RemoteAddr = "203.0.113.10:51234"

	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")

	assert.Equal(t, "198.51.100.7", getClientIP(req))
}
