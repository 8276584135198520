package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/purplemerit/account-service/internal/core/domain"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", 2*time.Hour, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), "alice@example.com", "passw0rd", "alice")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.PasswordHash == "passw0rd" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("passw0rd")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("other-pass")); err == nil {
		t.Fatalf("hash matched a different plaintext")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.Status != domain.StatusInactive {
		t.Fatalf("expected default status inactive, got %s", user.Status)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), "bob@example.com", "passw0rd", "bob"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob@example.com", "passw0rd2", "bobby"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, err := svc.Signup(context.Background(), "carol@example.com", "s3cretpw", "carol")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last login to be set")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("token rejected: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("expected subject %s, got %s", created.ID, claims.UserID)
	}
	if claims.Role != created.Role {
		t.Fatalf("expected role %s, got %s", created.Role, claims.Role)
	}
	if remaining := time.Until(claims.ExpiresAt); remaining < 119*time.Minute || remaining > 121*time.Minute {
		t.Fatalf("expected ~2h expiry, got %s", remaining)
	}
}

func TestAuthService_Login_NoEnumeration(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Signup(context.Background(), "dave@example.com", "goodpass1", "dave")

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_LastLoginWriteFailureIsNonFatal(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Signup(context.Background(), "erin@example.com", "passw0rd", "erin")
	repo.failLastLogin = true

	token, _, err := svc.Login(context.Background(), "erin@example.com", "passw0rd")
	if err != nil {
		t.Fatalf("login should survive last-login write failure, got %v", err)
	}
	if token == "" {
		t.Fatalf("expected token despite timestamp failure")
	}
}

func signTestToken(t *testing.T, secret string, subject string, method jwt.SigningMethod, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "user",
		"exp":  expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthService_VerifyToken_Expiry(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	fresh := signTestToken(t, "secret", "user_1", jwt.SigningMethodHS256, time.Now().Add(time.Minute))
	if _, err := svc.VerifyToken(fresh); err != nil {
		t.Fatalf("unexpired token rejected: %v", err)
	}

	expired := signTestToken(t, "secret", "user_1", jwt.SigningMethodHS256, time.Now().Add(-time.Minute))
	if _, err := svc.VerifyToken(expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	forged := signTestToken(t, "other-secret", "user_1", jwt.SigningMethodHS256, time.Now().Add(time.Minute))
	if _, err := svc.VerifyToken(forged); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.VerifyToken("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
