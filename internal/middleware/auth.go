package middleware

import (
	"context"
	"net/http"

	"github.com/mzaikin/wakecall/internal/models"
)

// Identity headers set by the trusted gateway in front of this service.
// The gateway owns session verification; by the time a request gets here
// the headers are authoritative.
const (
	UserIDHeader    = "X-User-Id"
	UserEmailHeader = "X-User-Email"
	UserNameHeader  = "X-User-Name"
)

const identityKey contextKey = "identity"

// Identity extracts the authenticated user from the gateway headers and
// stores it in the request context. Requests without an id or email are
// rejected before reaching any handler.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := models.Identity{
			ID:    r.Header.Get(UserIDHeader),
			Email: r.Header.Get(UserEmailHeader),
			Name:  r.Header.Get(UserNameHeader),
		}

		if identity.ID == "" || identity.Email == "" {
			respondError(w, r, http.StatusUnauthorized, ErrorCodeUnauthorized, ErrorMessageUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity returns the authenticated user stored by Identity.
func GetIdentity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}
