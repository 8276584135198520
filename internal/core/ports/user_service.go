package ports

import (
	"context"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// UpdateProfileInput carries the optional fields of a profile update.
// Empty strings mean "leave unchanged".
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// UserService defines the self-service profile use cases.
type UserService interface {
	// GetProfile returns the caller's own record.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	// GetUser returns any user by ID, for authenticated callers.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the supplied fields to the caller's record.
	// A password change requires CurrentPassword to match the stored hash.
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	// ChangePassword replaces the password of targetID after verifying
	// oldPassword. The target must be the authenticated caller.
	ChangePassword(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error
}
