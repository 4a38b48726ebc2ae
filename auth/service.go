package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/rajat290/fitpro-connect/models"
	"github.com/rajat290/fitpro-connect/repository"
)

// ErrInvalidCredentials covers unknown email, wrong password and
// deactivated accounts alike, so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrValidation = errors.New("validation failed")

type LoginResult struct {
	Token string            `json:"access_token"`
	User  models.PublicUser `json:"user"`
}

type RegisterInput struct {
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	Role           string     `json:"role"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	PhoneNumber    *string    `json:"phone_number"`
	MedicalHistory *string    `json:"medical_history"`
	FitnessGoals   *string    `json:"fitness_goals"`
}

// Service turns credentials into sessions. It holds no per-request
// state; the repository and issuer are safe for concurrent use.
type Service struct {
	Repo   repository.UserRepository
	Issuer *TokenIssuer
	Hasher *PasswordHasher

	// dummyHash is compared against when the email is unknown, so the
	// unknown-email path costs about as much as a real comparison.
	dummyHash string
}

func NewService(repo repository.UserRepository, issuer *TokenIssuer, hasher *PasswordHasher) (*Service, error) {
	dummy, err := hasher.Hash("fitpro-connect-dummy")
	if err != nil {
		return nil, err
	}
	return &Service{
		Repo:      repo,
		Issuer:    issuer,
		Hasher:    hasher,
		dummyHash: dummy,
	}, nil
}

// Login verifies the credentials and mints an access token. Every
// failure path returns ErrInvalidCredentials except store outages,
// which surface as repository.ErrStoreUnavailable.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.Hasher.Verify(password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  models.NewPublicUser(user),
	}, nil
}

// Register creates a new user row with a hashed password. Role defaults
// to member when omitted.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := models.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	role := models.RoleMember
	if in.Role != "" {
		parsed, err := models.ParseRole(in.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		role = parsed
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if role == models.RoleMember {
		user.FirstName = in.FirstName
		user.LastName = in.LastName
		user.DateOfBirth = in.DateOfBirth
		user.PhoneNumber = in.PhoneNumber
		user.MedicalHistory = in.MedicalHistory
		user.FitnessGoals = in.FitnessGoals
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
