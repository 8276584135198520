package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/purplemerit/account-service/internal/core/domain"
	"github.com/purplemerit/account-service/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// AdminService implements the admin-only listing and status toggle.
type AdminService struct {
	repo  ports.UserRepository
	cache ProfileCache
	log   zerolog.Logger
}

func NewAdminService(repo ports.UserRepository, cache ProfileCache, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, cache: cache, log: log}
}

// ListUsers returns one page of non-admin users. Admin accounts are excluded
// from both the page and the total, so TotalPages always equals
// ceil(TotalUsers/limit) over the listable set.
func (s *AdminService) ListUsers(ctx context.Context, callerRole domain.Role, page, limit int) (*ports.ListUsersResult, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		ExcludeRole: domain.RoleAdmin,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListUsersResult{
		Users:       users,
		TotalUsers:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

// SetStatus activates or deactivates the target account. The status value is
// validated here as well as at the HTTP boundary so no unknown state can be
// persisted regardless of entry point.
func (s *AdminService) SetStatus(ctx context.Context, callerRole domain.Role, targetID string, status domain.Status) error {
	if callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, targetID, status, time.Now().UTC()); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, targetID)
	s.log.Info().Str("user_id", targetID).Str("status", string(status)).Msg("user status updated")
	return nil
}
