package domain

import (
	"errors"
	"time"
)

// Role determines what a caller is allowed to do. There are exactly two.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is the account activation state. New accounts start inactive and
// stay that way until an admin activates them.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the two known statuses. Status arrives
// from clients on the admin toggle endpoint, so it must be checked at the
// boundary before it reaches the store.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
	ErrNoFields           = errors.New("no fields provided to update")
	ErrPasswordRequired   = errors.New("current password is required")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
	ErrInvalidStatus      = errors.New("status must be active or inactive")
)

// User models an account holder. PasswordHash never leaves the backend: the
// json tag drops it, and transport DTOs are built from explicit fields.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       Status     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
