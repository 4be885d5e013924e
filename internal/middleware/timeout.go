package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout bounds how long a request may hold both downstream channels
// open. A submission that exceeds it reports as timed out rather than
// hanging the form.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				return
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					respondError(w, r, http.StatusRequestTimeout, ErrorCodeRequestTimeout, ErrorMessageRequestTimeout)
				}
			}
		})
	}
}
