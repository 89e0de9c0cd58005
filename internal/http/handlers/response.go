// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. The intake API speaks a small `success`-flag envelope:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "data": {...}, "submissionId": "..." }
//
//	HTTP/1.1 400 Bad Request
//	{ "success": false, "error": "Invalid request data", "details": {"field": ["msg"]} }
//
//	HTTP/1.1 500 Internal Server Error
//	{ "success": false, "error": "..." }
//
// fail() centralizes error formatting and ensures 5xx responses are logged
// with request context for observability. Router-level fallbacks (NoRoute,
// NoMethod) use the exported Fail.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crestview-advisors/go-intake-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by failing endpoints.
type ErrorResponse struct {
	Success bool `json:"success"`
	// Human-readable error description, safe for display to users.
	Error string `json:"error"`
	// Per-field validation messages, present only on validation failures.
	Details map[string][]string `json:"details,omitempty"`
}

// fail aborts the request with the error envelope and logs server-side
// errors through the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// validationFail writes the 400 envelope with per-field details. Validation
// failures are client errors; they are not logged at error level.
func validationFail(c *gin.Context, details map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "Invalid request data",
		Details: details,
	})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
