package repository

import (
	"context"
	"errors"

	"github.com/rajat290/fitpro-connect/models"
)

// ErrStoreUnavailable wraps driver-level failures (connection refused,
// query timeout) so handlers can answer 503 without leaking details.
var ErrStoreUnavailable = errors.New("user store unavailable")

var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns (nil, nil) when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListMembers(ctx context.Context) ([]*models.User, error)
}
