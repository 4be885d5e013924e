package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

// Error codes used by middleware responses.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
	ErrorCodeUnauthorized      = "UNAUTHORIZED"
)

// Error messages used by middleware responses.
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
	ErrorMessageUnauthorized      = "Authentication required"
)

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
	render.JSON(w, r, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
