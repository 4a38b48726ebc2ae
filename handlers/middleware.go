package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/models"
)

type contextKey string

const claimsKey contextKey = "auth-claims"

// ClaimsFromContext returns the verified claims RequireAuth stored on
// the request, so handlers never re-query the user store for identity.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// RequireAuth verifies the bearer token and, when roles are given,
// checks the claims' role against them. Missing or unverifiable tokens
// get a 401 with one generic message regardless of the actual cause;
// a valid token with the wrong role gets a 403.
func RequireAuth(issuer *auth.TokenIssuer, roles ...models.Role) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, ApiResponse{
					Success: false,
					Message: "Authentication required",
				})
				return
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				// expired, malformed and bad-signature all look the same
				writeJSON(w, http.StatusUnauthorized, ApiResponse{
					Success: false,
					Message: "Authentication required",
				})
				return
			}

			if len(allowed) > 0 && !allowed[claims.Role] {
				writeJSON(w, http.StatusForbidden, ApiResponse{
					Success: false,
					Message: "Insufficient permissions",
				})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
