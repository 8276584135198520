package handler

import (
	"time"

	"github.com/purplemerit/account-service/internal/core/domain"
)

// messageResponse is the envelope for plain confirmation messages. Error
// responses share the same shape via the central error handler.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// Field names follow the wire contract the frontend already speaks.

type signupRequest struct {
	Email    string `json:"user_email"    validate:"required,email"`
	Password string `json:"user_password" validate:"required,strongpassword"`
	Name     string `json:"user_name"     validate:"required,min=3,max=20"`
}

type loginRequest struct {
	Email    string `json:"user_email"    validate:"required"`
	Password string `json:"user_password" validate:"required"`
}

type updateProfileRequest struct {
	NewName         string `json:"new_name"         validate:"omitempty,min=3,max=20"`
	NewEmail        string `json:"new_email"        validate:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"     validate:"omitempty,strongpassword"`
}

type changePasswordRequest struct {
	UserID      string `json:"userId"       validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strongpassword"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// --- Response types ---

// publicProfile is the minimal public view: name, email, role. Never a hash.
type publicProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toPublicProfile(u *domain.User) publicProfile {
	return publicProfile{
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

type signupResponse struct {
	Message string        `json:"message"`
	User    publicProfile `json:"user"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  publicProfile `json:"user"`
}

type profileResponse struct {
	UserProfile publicProfile `json:"userProfile"`
}

type updateProfileResponse struct {
	Message string        `json:"message"`
	User    publicProfile `json:"user"`
}

// userDetail is the richer record view used by GET /user/:id and the admin
// listing: everything except the password hash.
type userDetail struct {
	ID          string     `json:"id"`
	Email       string     `json:"user_email"`
	Name        string     `json:"user_name"`
	Role        string     `json:"user_role"`
	Status      string     `json:"user_status"`
	LastLoginAt *time.Time `json:"lastLoginTimestamp,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toUserDetail(u *domain.User) userDetail {
	return userDetail{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type getUserResponse struct {
	User userDetail `json:"user"`
}

type listUsersResponse struct {
	Users       []userDetail `json:"users"`
	TotalUsers  int64        `json:"totalUsers"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}
