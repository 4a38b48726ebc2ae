package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rajat290/fitpro-connect/models"
)

func testUser() *models.User {
	first := "Alice"
	return &models.User{
		ID:        "6f1e8a1c-9a6c-4e5a-b0cb-0f5a3c2d1e4f",
		Email:     "alice@example.com",
		Role:      models.RoleMember,
		IsActive:  true,
		FirstName: &first,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := testUser()

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, models.RoleMember, claims.Role)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	require.ErrorIs(t, err, ErrTokenMalformed)

	_, err = issuer.Verify("")
	require.ErrorIs(t, err, ErrTokenMalformed)
}
