package main

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter manages per-client request rate limits
type RateLimiter struct {
	limits     map[string][]time.Time // client IP -> request timestamps
	maxPerHour int
	mutex      sync.RWMutex
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(maxPerHour int) *RateLimiter {
	rl := &RateLimiter{
		limits:     make(map[string][]time.Time),
		maxPerHour: maxPerHour,
	}

	// Start cleanup goroutine (remove old timestamps every 5 minutes)
	go rl.cleanupOldTimestamps()

	return rl
}

// CheckAndRecord checks if the client is within the rate limit and records
// the request
func (rl *RateLimiter) CheckAndRecord(clientIP string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	hourAgo := now.Add(-1 * time.Hour)
	resetTime = now.Add(1 * time.Hour)

	timestamps := rl.limits[clientIP]

	// Keep only requests from the last hour
	filtered := []time.Time{}
	for _, ts := range timestamps {
		if ts.After(hourAgo) {
			filtered = append(filtered, ts)
		}
	}

	if len(filtered) >= rl.maxPerHour {
		// The oldest request marks when the window frees up
		if len(filtered) > 0 {
			resetTime = filtered[0].Add(1 * time.Hour)
		}
		return false, 0, resetTime
	}

	filtered = append(filtered, now)
	rl.limits[clientIP] = filtered

	remaining = rl.maxPerHour - len(filtered)
	return true, remaining, resetTime
}

// cleanupOldTimestamps removes timestamps older than 1 hour
func (rl *RateLimiter) cleanupOldTimestamps() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		now := time.Now()
		hourAgo := now.Add(-1 * time.Hour)

		for clientIP, timestamps := range rl.limits {
			filtered := []time.Time{}
			for _, ts := range timestamps {
				if ts.After(hourAgo) {
					filtered = append(filtered, ts)
				}
			}

			if len(filtered) == 0 {
				delete(rl.limits, clientIP)
			} else {
				rl.limits[clientIP] = filtered
			}
		}
		rl.mutex.Unlock()
	}
}

// getClientIP extracts the client IP, preferring proxy headers
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// withRateLimit wraps a handler with per-IP rate limiting
func withRateLimit(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetTime := rl.CheckAndRecord(getClientIP(r))
		if !allowed {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", resetTime.UTC().Format(http.TimeFormat))
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"error":     "Rate limit exceeded",
				"resetTime": resetTime.UTC().Format(time.RFC3339),
			})
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		next(w, r)
	}
}
