package ports

import (
	"context"
	"time"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// TokenClaims is the identity a verified bearer token proves: who the caller
// is, what they may do, and until when the token is good.
type TokenClaims struct {
	UserID    string
	Role      domain.Role
	ExpiresAt time.Time
}

// AuthService defines the signup, login and token verification use cases.
type AuthService interface {
	// Signup creates a new account with default role and status.
	// It never issues a token.
	Signup(ctx context.Context, email, password, name string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials so accounts cannot be enumerated.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken checks signature and expiry of a raw token string and
	// returns the claims it carries. It performs no I/O.
	VerifyToken(token string) (*TokenClaims, error)
}
