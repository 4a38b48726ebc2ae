package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the discriminator for the single users table.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTrainer:
		return RoleTrainer, nil
	case RoleMember:
		return RoleMember, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is one row of the users table. Admin and trainer rows carry only
// the base columns; member rows may additionally fill the profile fields.
type User struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	Email        string    `json:"email" db:"email" bson:"email"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"password_hash"`
	Role         Role      `json:"role" db:"role" bson:"role"`
	IsActive     bool      `json:"is_active" db:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`

	FirstName      *string    `json:"first_name,omitempty" db:"first_name" bson:"first_name,omitempty"`
	LastName       *string    `json:"last_name,omitempty" db:"last_name" bson:"last_name,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth" bson:"date_of_birth,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty" db:"phone_number" bson:"phone_number,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty" db:"medical_history" bson:"medical_history,omitempty"`
	FitnessGoals   *string    `json:"fitness_goals,omitempty" db:"fitness_goals" bson:"fitness_goals,omitempty"`
}

// NormalizeEmail is applied both when storing and when looking up, so
// logins are case-insensitive regardless of how the address was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PublicUser is the client-facing view returned by login and profile
// endpoints. It is built field by field so the password hash can never
// ride along by accident.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func NewPublicUser(u *User) PublicUser {
	pub := PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.FirstName != nil {
		pub.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		pub.LastName = *u.LastName
	}
	return pub
}

// FullName is used on the membership card.
func (u *User) FullName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return u.Email
	}
	return strings.Join(parts, " ")
}
