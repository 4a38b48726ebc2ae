package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rajat290/fitpro-connect/models"
)

// queryTimeout bounds every store round trip so a dead database turns
// into ErrStoreUnavailable instead of a hung request.
const queryTimeout = 3 * time.Second

const userColumns = `id, email, password_hash, role, is_active, created_at, updated_at,
	first_name, last_name, date_of_birth, phone_number, medical_history, fitness_goals`

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser inserts a new user row. Email must already be normalized
// and the password already hashed by the caller.
func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, user.ID, user.Email, user.PasswordHash, user.Role, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
		user.FirstName, user.LastName, user.DateOfBirth, user.PhoneNumber,
		user.MedicalHistory, user.FitnessGoals)

	if err != nil {
		// 23505 is unique_violation, here only possible on email
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetUserByEmail fetches a user by email
func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, models.NormalizeEmail(email))

	return scanUser(row)
}

// GetUserByID fetches a user by primary key
func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	return scanUser(row)
}

// ListMembers returns all rows with the member discriminator
func (r *PostgresUserRepo) ListMembers(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1
		ORDER BY created_at
	`, models.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var members []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive,
			&user.CreatedAt, &user.UpdatedAt,
			&user.FirstName, &user.LastName, &user.DateOfBirth, &user.PhoneNumber,
			&user.MedicalHistory, &user.FitnessGoals,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		members = append(members, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return members, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
		&user.FirstName, &user.LastName, &user.DateOfBirth, &user.PhoneNumber,
		&user.MedicalHistory, &user.FitnessGoals,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}
