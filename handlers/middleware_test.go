package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/models"
)

func issueToken(t *testing.T, issuer *auth.TokenIssuer, role models.Role) string {
	t.Helper()
	token, err := issuer.Issue(&models.User{
		ID:    "user-1",
		Email: "alice@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func protectedProbe(issuer *auth.TokenIssuer, roles ...models.Role) http.HandlerFunc {
	return RequireAuth(issuer, roles...)(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Subject", claims.Subject)
		w.WriteHeader(http.StatusOK)
	})
}

func doGet(handler http.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRequireAuthMissingToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := protectedProbe(issuer, models.RoleAdmin)

	rec := doGet(handler, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGet(handler, "Basic abc123")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := protectedProbe(issuer, models.RoleAdmin)

	malformed := doGet(handler, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, malformed.Code)

	expired := doGet(handler, "Bearer "+issueExpired(t))
	require.Equal(t, http.StatusUnauthorized, expired.Code)

	forged := doGet(handler, "Bearer "+issueToken(t, auth.NewTokenIssuer("other-secret", time.Hour), models.RoleAdmin))
	require.Equal(t, http.StatusUnauthorized, forged.Code)

	// all invalid-token rejections share one body
	require.Equal(t, malformed.Body.String(), expired.Body.String())
	require.Equal(t, malformed.Body.String(), forged.Body.String())
}

func issueExpired(t *testing.T) string {
	t.Helper()
	return issueToken(t, auth.NewTokenIssuer("test-secret", -time.Minute), models.RoleAdmin)
}

func TestRequireAuthRoleGate(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	adminOnly := protectedProbe(issuer, models.RoleAdmin)

	// member token on an admin route is a 403, not a 401
	memberToken := issueToken(t, issuer, models.RoleMember)
	forbidden := doGet(adminOnly, "Bearer "+memberToken)
	require.Equal(t, http.StatusForbidden, forbidden.Code)

	noToken := doGet(adminOnly, "")
	require.Equal(t, http.StatusUnauthorized, noToken.Code)
	require.NotEqual(t, forbidden.Body.String(), noToken.Body.String())

	adminToken := issueToken(t, issuer, models.RoleAdmin)
	ok := doGet(adminOnly, "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, ok.Code)
	require.Equal(t, "user-1", ok.Header().Get("X-Subject"))
}

func TestRequireAuthAnyRole(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	anyAuthenticated := protectedProbe(issuer)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleTrainer, models.RoleMember} {
		rec := doGet(anyAuthenticated, "Bearer "+issueToken(t, issuer, role))
		require.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestRequireAuthMultiRole(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	staffOnly := protectedProbe(issuer, models.RoleAdmin, models.RoleTrainer)

	rec := doGet(staffOnly, "Bearer "+issueToken(t, issuer, models.RoleTrainer))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(staffOnly, "Bearer "+issueToken(t, issuer, models.RoleMember))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
