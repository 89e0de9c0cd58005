// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements a lightweight, in-memory, fixed-window rate limiter
// with per-client counters and opportunistic garbage collection. It is
// designed for simplicity, low overhead, and predictable behavior in a
// single-process deployment (e.g., a container or dev setup).
//
// Features:
//   - Per-IP request counters over a rolling window
//   - X-RateLimit-Limit / -Remaining / -Reset headers on every response
//   - 429 with Retry-After when the window is exhausted
//   - Lazy sweep of expired windows on every check (no background task)
//
// Notes:
//   - This limiter is process-local. Under horizontal scaling the effective
//     limit is "N per window per warm instance"; swap the WindowLimiter for
//     a distributed store to enforce a global limit without changing the
//     middleware.
//   - Denial is a deterministic, reportable rejection for the client, not an
//     error condition; it is not logged at error level.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// windowRecord tracks one client's requests in the current window.
type windowRecord struct {
	count     int
	resetTime time.Time
}

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is how long the client must wait; meaningful only when the
	// request was denied.
	RetryAfter time.Duration
}

// WindowLimiter is an injectable fixed-window request counter keyed by a
// client identity string. State lives in an internal map guarded by a mutex;
// expired windows are swept opportunistically on every check so the map
// stays bounded by the set of currently-active clients.
//
// This type is safe for concurrent use.
type WindowLimiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	clients map[string]*windowRecord
}

// NewWindowLimiter constructs a limiter allowing max requests per window.
// max values < 1 are coerced to 1; window values <= 0 default to a minute.
func NewWindowLimiter(max int, window time.Duration) *WindowLimiter {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{
		max:     max,
		window:  window,
		clients: make(map[string]*windowRecord),
	}
}

// Check records one request from key at time now and reports the decision.
//
// Behavior:
//   - no record, or the record's window expired: a fresh window starts with
//     count 1 and the request is allowed.
//   - count below the max: increment and allow, reporting the remainder.
//   - otherwise: deny, reporting how long until the window resets.
//
// Expired entries for all clients are swept before the lookup, so a stale
// record never survives its own check.
func (wl *WindowLimiter) Check(key string, now time.Time) Decision {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	for k, rec := range wl.clients {
		if now.After(rec.resetTime) {
			delete(wl.clients, k)
		}
	}

	rec, ok := wl.clients[key]
	if !ok || now.After(rec.resetTime) {
		rec = &windowRecord{count: 1, resetTime: now.Add(wl.window)}
		wl.clients[key] = rec
		return Decision{
			Allowed:   true,
			Limit:     wl.max,
			Remaining: wl.max - 1,
			ResetAt:   rec.resetTime,
		}
	}

	if rec.count >= wl.max {
		return Decision{
			Allowed:    false,
			Limit:      wl.max,
			Remaining:  0,
			ResetAt:    rec.resetTime,
			RetryAfter: rec.resetTime.Sub(now),
		}
	}

	rec.count++
	return Decision{
		Allowed:   true,
		Limit:     wl.max,
		Remaining: wl.max - rec.count,
		ResetAt:   rec.resetTime,
	}
}

// clientKey extracts the caller's identity from proxy-aware client IP
// resolution, falling back to a sentinel when nothing usable is present.
func clientKey(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit returns a Gin middleware enforcing wl per client IP.
//
// Every response, allowed or denied, carries the X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset (unix seconds) headers.
// Denied requests short-circuit with:
//
//	HTTP/1.1 429 Too Many Requests
//	Retry-After: <seconds>
//	{ "success": false, "error": "Too many requests", "retryAfter": <seconds> }
func RateLimit(wl *WindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := wl.Check(clientKey(c), time.Now())

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

		if !d.Allowed {
			retry := int(d.RetryAfter.Seconds())
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"error":      "Too many requests, please try again later",
				"retryAfter": retry,
			})
			return
		}
		c.Next()
	}
}
