package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	return raw, raw != ""
}

// AuthnMiddleware requires a valid, fully authenticated bearer token. Partial
// tokens issued between the password and second-factor steps are refused.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, http.StatusForbidden, "Forbidden: Invalid token")
				return
			}

			if claims.Partial {
				log.Warn("partial token presented to protected endpoint", "user_id", claims.Subject)
				writeBearerError(w, http.StatusForbidden, "Forbidden: Two-factor authentication required")
				return
			}

			ctx = slogx.With(contextWithAuth(ctx, claims), "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeBearerError sends an RFC 6750 challenge together with the JSON error
// body used across the API.
func writeBearerError(w http.ResponseWriter, status int, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, status, desc)
}
