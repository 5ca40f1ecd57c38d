package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-be/internal/auth"
	"github.com/fittrack/fittrack-be/internal/http/respond"
)

const bearerPrefix = "Bearer "

// Identity is the request-scoped authenticated principal. It carries no
// roles beyond "authenticated".
type Identity struct {
	UserID   int64
	Username string
}

type identityKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the authenticated identity, if one was
// established for this request.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Authenticate inspects the Authorization header once per request. A valid
// bearer token establishes the request-scoped identity; a missing, malformed,
// expired, or mis-signed token leaves the request unauthenticated. The
// request is always forwarded to next: routes that need an identity enforce
// it themselves via RequireAuth, and routes that don't (register, login)
// must stay reachable without a token.
func Authenticate(tokens *auth.TokenManager, logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, bearerPrefix) {
			raw := strings.TrimPrefix(header, bearerPrefix)
			claims, err := tokens.Parse(raw)
			if err == nil && claims.Subject != "" {
				if _, established := IdentityFromContext(r.Context()); !established {
					var ok bool
					if ok, err = tokens.Validate(raw, claims.Subject); err == nil && ok {
						r = r.WithContext(WithIdentity(r.Context(), Identity{
							UserID:   claims.UserID,
							Username: claims.Username,
						}))
					}
				}
			}
			if err != nil {
				logger.Warn().
					Str("path", r.URL.Path).
					Err(err).
					Msg("token rejected; continuing unauthenticated")
			}
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth is the route-level check for protected resources. The gate
// above never blocks; this does.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
