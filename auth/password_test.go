package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", digest)

	require.True(t, hasher.Verify("secret123", digest))
	require.False(t, hasher.Verify("wrong", digest))
	require.False(t, hasher.Verify("", digest))
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	a, err := hasher.Hash("secret123")
	require.NoError(t, err)
	b, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// per-record random salt means distinct digests
	require.NotEqual(t, a, b)
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)
	require.Equal(t, bcrypt.DefaultCost, hasher.Cost)

	hasher = NewPasswordHasher(-1)
	require.Equal(t, bcrypt.DefaultCost, hasher.Cost)
}
