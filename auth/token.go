package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajat290/fitpro-connect/models"
)

// Token verification failures. Handlers collapse all three to the same
// generic 401 so callers cannot probe which check failed.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("token signature invalid")
)

// Claims is the payload embedded in every access token.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 access tokens. The secret is
// loaded once at startup and never mutated afterwards.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue mints a token carrying the user's id, email and role.
func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string, classifying failures so
// the caller can log the real cause while answering generically.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
