// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides SecurityHeaders, which hardens the public intake API.
// The endpoints here are JSON-only and sit behind a reverse proxy, embedded
// by the marketing site's forms, so the posture is: never let a response be
// sniffed or framed, keep HSTS opt-in (proxy-to-app traffic may be plain
// HTTP), and optionally forbid caching since submission responses can echo
// personal data.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the headers emitted by SecurityHeaders.
//
// EnableHSTS controls Strict-Transport-Security, emitted only for HTTPS
// requests. Enable it only when traffic is HTTPS end-to-end, including the
// proxy-to-app hop.
//
// HSTSMaxAge is the HSTS lifetime; values <= 0 fall back to 180 days.
//
// NoStore adds Cache-Control: no-store (plus legacy Pragma/Expires) so
// responses carrying submission data are never cached.
//
// EnablePolicy adds Permissions-Policy and
// X-Permitted-Cross-Domain-Policies. They only affect browsers and are
// harmless for non-browser clients.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders returns a Gin middleware that attaches security headers to
// every response.
//
// Always set: X-Content-Type-Options: nosniff, X-Frame-Options: DENY,
// Referrer-Policy: no-referrer. The optional groups follow SecurityOptions.
// When an X-Request-ID header is present it is appended to
// Access-Control-Expose-Headers so browser clients can correlate a failed
// submission with the server logs.
//
// No Content-Security-Policy is emitted: this API never serves HTML.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := int(opt.HSTSMaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((180 * 24 * time.Hour).Seconds())
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		if opt.NoStore {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}

		// HSTS only for HTTPS requests, never for plain HTTP.
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security",
				"max-age="+strconv.Itoa(maxAge)+"; includeSubDomains; preload")
		}

		if rid := h.Get("X-Request-ID"); rid != "" {
			// Append without clobbering headers CORS already exposed.
			const hdr = "Access-Control-Expose-Headers"
			cur := h.Get(hdr)
			if cur == "" {
				h.Set(hdr, "X-Request-ID")
			} else if !strings.Contains(cur, "X-Request-ID") {
				h.Set(hdr, cur+", X-Request-ID")
			}
		}

		c.Next()
	}
}

// isHTTPS reports whether the request arrived over HTTPS, either directly or
// via a proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
