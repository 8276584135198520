package ports

import (
	"context"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// ListUsersResult is one page of the admin user listing.
type ListUsersResult struct {
	Users       []*domain.User
	TotalUsers  int64
	CurrentPage int
	TotalPages  int
}

// AdminService defines the admin-only use cases. Both operations re-check the
// caller's role even though the router already gates them, so the contract
// holds regardless of how the service is reached.
type AdminService interface {
	// ListUsers returns a page of non-admin users with pagination totals.
	ListUsers(ctx context.Context, callerRole domain.Role, page, limit int) (*ListUsersResult, error)
	// SetStatus activates or deactivates the target user.
	SetStatus(ctx context.Context, callerRole domain.Role, targetID string, status domain.Status) error
}
