package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/account-service/internal/core/domain"
	"github.com/purplemerit/account-service/internal/core/ports"
)

type stubUserService struct {
	getFn            func(ctx context.Context, id string) (*domain.User, error)
	updateFn         func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error)
	changePasswordFn func(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error
}

func (s *stubUserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func (s *stubUserService) ChangePassword(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, callerID, targetID, oldPassword, newPassword)
}

func TestProfileHandler_Get_Success(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{Email: "alice@example.com", Name: "alice", Role: domain.RoleUser}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/profile", "")
	c.Set("user_id", "user_1")
	c.Set("role", "user")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	profile, ok := resp["userProfile"].(map[string]any)
	if !ok || profile["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProfileHandler_Get_MissingClaims(t *testing.T) {
	h := NewProfileHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/profile", "")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth claims, got %v", err)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/profile", "")
	c.Set("user_id", "user_1")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileHandler_Update_PassesFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
			if userID != "user_1" || input.Name != "newname" || input.Email != "new@example.com" {
				t.Fatalf("unexpected input: %s %+v", userID, input)
			}
			return &domain.User{Email: input.Email, Name: input.Name, Role: domain.RoleUser}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/update-profile",
		`{"new_name":"newname","new_email":"new@example.com"}`)
	c.Set("user_id", "user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_RejectsWeakNewPassword(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/update-profile",
		`{"current_password":"oldpass1","new_password":"weak"}`)
	c.Set("user_id", "user_1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %v", err)
	}
}

func TestProfileHandler_ChangePassword_Success(t *testing.T) {
	stub := &stubUserService{
		changePasswordFn: func(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error {
			if callerID != "user_1" || targetID != "user_1" {
				t.Fatalf("unexpected ids: %s %s", callerID, targetID)
			}
			return nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/change-password",
		`{"userId":"user_1","old_password":"oldpass1","new_password":"newpass1"}`)
	c.Set("user_id", "user_1")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_ChangePassword_ForwardsTargetMismatch(t *testing.T) {
	stub := &stubUserService{
		changePasswordFn: func(ctx context.Context, callerID, targetID, oldPassword, newPassword string) error {
			return domain.ErrForbidden
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/change-password",
		`{"userId":"user_2","old_password":"oldpass1","new_password":"newpass1"}`)
	c.Set("user_id", "user_1")

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
