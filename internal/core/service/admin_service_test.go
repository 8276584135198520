package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/purplemerit/account-service/internal/core/domain"
)

func TestAdminService_ListUsers_Forbidden(t *testing.T) {
	svc := NewAdminService(newStubUserRepo(), newStubCache(), zerolog.Nop())

	if _, err := svc.ListUsers(context.Background(), domain.RoleUser, 1, 10); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin caller, got %v", err)
	}
}

func TestAdminService_ListUsers_ExcludesAdmins(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, newStubCache(), zerolog.Nop())

	for i := 0; i < 3; i++ {
		seedUser(t, repo, fmt.Sprintf("u%d@example.com", i), "passw0rd", fmt.Sprintf("user%d", i))
	}
	admin := seedUser(t, repo, "root@example.com", "passw0rd", "root")
	repo.users[admin.ID].Role = domain.RoleAdmin

	result, err := svc.ListUsers(context.Background(), domain.RoleAdmin, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.TotalUsers != 3 {
		t.Fatalf("expected 3 listable users, got %d", result.TotalUsers)
	}
	for _, u := range result.Users {
		if u.Role == domain.RoleAdmin {
			t.Fatalf("admin account leaked into listing: %+v", u)
		}
	}
}

func TestAdminService_ListUsers_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, newStubCache(), zerolog.Nop())

	for i := 0; i < 25; i++ {
		seedUser(t, repo, fmt.Sprintf("u%d@example.com", i), "passw0rd", fmt.Sprintf("user%d", i))
	}

	result, err := svc.ListUsers(context.Background(), domain.RoleAdmin, 3, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.TotalUsers != 25 || result.TotalPages != 3 || result.CurrentPage != 3 {
		t.Fatalf("unexpected pagination: total=%d pages=%d page=%d",
			result.TotalUsers, result.TotalPages, result.CurrentPage)
	}
	if len(result.Users) != 5 {
		t.Fatalf("expected 5 users on the last page, got %d", len(result.Users))
	}
}

func TestAdminService_ListUsers_DefaultsOnBadInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, newStubCache(), zerolog.Nop())
	seedUser(t, repo, "u@example.com", "passw0rd", "user")

	result, err := svc.ListUsers(context.Background(), domain.RoleAdmin, 0, -5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.CurrentPage != 1 {
		t.Fatalf("expected page to default to 1, got %d", result.CurrentPage)
	}
	if result.TotalPages != 1 {
		t.Fatalf("expected limit to default to 10, got totalPages=%d", result.TotalPages)
	}
}

func TestAdminService_SetStatus(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubCache()
	svc := NewAdminService(repo, cache, zerolog.Nop())
	u := seedUser(t, repo, "target@example.com", "passw0rd", "target")

	if err := svc.SetStatus(context.Background(), domain.RoleUser, u.ID, domain.StatusActive); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin caller, got %v", err)
	}
	if err := svc.SetStatus(context.Background(), domain.RoleAdmin, u.ID, domain.Status("frozen")); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.SetStatus(context.Background(), domain.RoleAdmin, "missing", domain.StatusActive); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.SetStatus(context.Background(), domain.RoleAdmin, u.ID, domain.StatusActive); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if repo.users[u.ID].Status != domain.StatusActive {
		t.Fatalf("status not persisted: %s", repo.users[u.ID].Status)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}
}
