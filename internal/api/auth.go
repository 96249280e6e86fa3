package api

import (
	"context"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// Login authenticates with email/password and returns the token plus the
// user's identity slice.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out domain.LoginResponse
	if err := c.do(ctx, request{method: "POST", path: "/login", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. The backend returns the created identity.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserSummary, error) {
	var out domain.UserSummary
	if err := c.do(ctx, request{method: "POST", path: "/register", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
