package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/purplemerit/account-service/internal/core/domain"
	"github.com/purplemerit/account-service/internal/core/ports"
)

// ProfileCache abstracts the best-effort read cache for public profiles
// (Redis in production). Implementations must swallow their own errors:
// a cache failure is never a request failure.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, id string)
}

// UserService implements profile reads and self-service updates.
type UserService struct {
	repo       ports.UserRepository
	cache      ProfileCache
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ProfileCache, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, cache: cache, bcryptCost: bcryptCost, log: log}
}

// GetProfile returns the caller's own record. The record may be gone if the
// account was removed between token issuance and use.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.GetUser(ctx, userID)
}

// GetUser returns any user by ID, served from the profile cache when warm.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, user)
	return user, nil
}

// UpdateProfile applies name, email and password changes to the caller's own
// record. An email move to an address held by another account is a conflict
// and leaves the record untouched. A password change requires the current
// password to match the stored hash.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.Name == "" && input.Email == "" && input.NewPassword == "" {
		return nil, domain.ErrNoFields
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != user.Name {
		user.Name = input.Name
	}

	if input.Email != "" && input.Email != user.Email {
		taken, err := s.repo.EmailInUse(ctx, input.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = input.Email
	}

	if input.NewPassword != "" {
		if input.CurrentPassword == "" {
			return nil, domain.ErrPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
			return nil, domain.ErrPasswordMismatch
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
// The target must be the authenticated caller; the endpoint historically
// accepted any target ID, which let one account rewrite another's password.
func (s *UserService) ChangePassword(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error {
	if targetID != callerID {
		return domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, targetID)
	s.log.Info().Str("user_id", targetID).Msg("password changed")
	return nil
}
