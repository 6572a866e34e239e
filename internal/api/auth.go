package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// Credentials are the email/password pair sent to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the server's reply to a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Login exchanges credentials for a bearer token and the admin's profile.
// On success the token is attached to subsequent requests; persisting it is
// the session layer's concern.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// Logout revokes the current token server-side. The in-memory token is
// cleared regardless of the call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	c.SetToken("")
	return err
}

// AdminProfile fetches the authenticated admin's profile with roles.
func (c *Client) AdminProfile(ctx context.Context) (models.Admin, error) {
	var resp struct {
		Admin models.Admin `json:"admin"`
	}
	if err := c.do(ctx, http.MethodGet, "", nil, &resp); err != nil {
		return models.Admin{}, err
	}
	return resp.Admin, nil
}
