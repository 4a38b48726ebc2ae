package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a configurable cost factor. The salt
// is generated per hash and embedded in the digest by bcrypt itself.
type PasswordHasher struct {
	Cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
