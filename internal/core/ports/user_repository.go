package ports

import (
	"context"
	"time"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// ListUsersFilter carries pagination parameters for the user listing.
// Page is 1-based; the service layer clamps Limit.
type ListUsersFilter struct {
	// ExcludeRole removes users holding this role from both the page and
	// the total count, so pagination math stays consistent with what the
	// caller can actually see.
	ExcludeRole domain.Role
	Page        int
	Limit       int
}

// UserRepository defines persistence operations for user accounts.
// All mutations are single-document atomic updates; concurrent writers to
// the same record race at last-write-wins granularity.
type UserRepository interface {
	// Create inserts a new user and returns it with the generated ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// EmailInUse reports whether email belongs to any user other than excludeID.
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	// Update persists name, email, password hash and updated_at for the user.
	Update(ctx context.Context, user *domain.User) error
	// UpdateLastLogin records a successful login time. Callers treat a
	// failure here as non-fatal.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	// UpdateStatus sets the activation status of the target user.
	// Returns domain.ErrUserNotFound when no such user exists.
	UpdateStatus(ctx context.Context, id string, status domain.Status, at time.Time) error
	// List returns a page of users matching filter and the total count of
	// matching documents.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
