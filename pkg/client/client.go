// Package client is a Go client for the account service API. It wraps the
// HTTP endpoints with typed methods, performs the same pre-flight input
// validation as the web frontend, and keeps the bearer token in a Session
// that notifies subscribers on login and logout.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the account service. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a Client for the API at baseURL. When httpClient is nil a
// default client with a sane timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: NewSession(),
	}
}

// Session exposes the token holder so callers can subscribe to auth changes.
func (c *Client) Session() *Session {
	return c.session
}

// --- Payload types ---

// PublicUser is the public profile view: name, email, role.
type PublicUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserDetail is the richer record view returned by /user/:id and /users.
type UserDetail struct {
	ID          string     `json:"id"`
	Email       string     `json:"user_email"`
	Name        string     `json:"user_name"`
	Role        string     `json:"user_role"`
	Status      string     `json:"user_status"`
	LastLoginAt *time.Time `json:"lastLoginTimestamp,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UsersPage is one page of the admin listing.
type UsersPage struct {
	Users       []UserDetail `json:"users"`
	TotalUsers  int64        `json:"totalUsers"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}

// UpdateProfileInput carries the optional profile update fields. Empty
// strings are omitted from the request.
type UpdateProfileInput struct {
	NewName         string `json:"new_name,omitempty"`
	NewEmail        string `json:"new_email,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// --- Operations ---

// Signup registers a new account. It runs the form validation rules before
// touching the network and never yields a token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*PublicUser, error) {
	if err := ValidateSignup(name, email, password); err != nil {
		return nil, err
	}

	body := map[string]string{
		"user_email":    email,
		"user_password": password,
		"user_name":     name,
	}
	var resp struct {
		User PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates, stores the token in the session, and notifies
// subscribers.
func (c *Client) Login(ctx context.Context, email, password string) (*PublicUser, error) {
	body := map[string]string{
		"user_email":    email,
		"user_password": password,
	}
	var resp struct {
		Token string     `json:"token"`
		User  PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, false, &resp); err != nil {
		return nil, err
	}

	c.session.SetToken(resp.Token)
	return &resp.User, nil
}

// Logout drops the token and notifies subscribers. Purely client-side: the
// token stays valid until it expires.
func (c *Client) Logout() {
	c.session.Clear()
}

// Profile returns the authenticated caller's own profile.
func (c *Client) Profile(ctx context.Context) (*PublicUser, error) {
	var resp struct {
		UserProfile PublicUser `json:"userProfile"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp.UserProfile, nil
}

// UpdateProfile applies the supplied fields to the caller's record.
func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*PublicUser, error) {
	if input.NewName != "" {
		if err := ValidateName(input.NewName); err != nil {
			return nil, err
		}
	}
	if input.NewEmail != "" {
		if err := ValidateEmail(input.NewEmail); err != nil {
			return nil, err
		}
	}
	if input.NewPassword != "" {
		if err := ValidatePassword(input.NewPassword); err != nil {
			return nil, err
		}
	}

	var resp struct {
		User PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/update-profile", input, true, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ChangePassword replaces the password for userID, which must be the
// authenticated caller's own ID.
func (c *Client) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	body := map[string]string{
		"userId":       userID,
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.do(ctx, http.MethodPut, "/change-password", body, true, nil)
}

// User returns a single user record by ID.
func (c *Client) User(ctx context.Context, id string) (*UserDetail, error) {
	var resp struct {
		User UserDetail `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/"+id, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Users returns one page of the admin user listing.
func (c *Client) Users(ctx context.Context, page, limit int) (*UsersPage, error) {
	path := "/users?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	var resp UsersPage
	if err := c.do(ctx, http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetUserStatus activates or deactivates the target user (admin only).
func (c *Client) SetUserStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/user/"+id+"/status", body, true, nil)
}

// do executes one request: encode body, attach the bearer token when auth is
// set, and decode either the expected payload or the error envelope.
func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&envelope)
		if envelope.Message == "" {
			envelope.Message = http.StatusText(res.StatusCode)
		}
		return &APIError{StatusCode: res.StatusCode, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
