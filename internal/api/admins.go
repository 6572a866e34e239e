package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// CreateAdminRequest creates an administrator account. Roles are role ids.
type CreateAdminRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Status               string `json:"status"`
	Roles                []int  `json:"roles,omitempty"`
}

// UpdateAdminRequest partially updates an administrator account.
// Nil fields are omitted from the request and left unchanged server-side.
type UpdateAdminRequest struct {
	Name                 *string `json:"name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Password             *string `json:"password,omitempty"`
	PasswordConfirmation *string `json:"password_confirmation,omitempty"`
	Status               *string `json:"status,omitempty"`
	Roles                []int   `json:"roles,omitempty"`
}

// Admins lists administrator accounts with pagination and optional search.
func (c *Client) Admins(ctx context.Context, page int, search string) (models.Paginated[models.Admin], error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if search != "" {
		params.Set("search", search)
	}

	var resp models.Paginated[models.Admin]
	err := c.do(ctx, http.MethodGet, "/admins?"+params.Encode(), nil, &resp)
	return resp, err
}

// CreateAdmin creates an administrator account.
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (models.Admin, error) {
	var admin models.Admin
	err := c.do(ctx, http.MethodPost, "/admins", req, &admin)
	return admin, err
}

// Admin retrieves an administrator account by id.
func (c *Client) Admin(ctx context.Context, id int) (models.Admin, error) {
	var admin models.Admin
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admins/%d", id), nil, &admin)
	return admin, err
}

// UpdateAdmin updates an administrator account.
func (c *Client) UpdateAdmin(ctx context.Context, id int, req UpdateAdminRequest) (models.Admin, error) {
	var admin models.Admin
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admins/%d", id), req, &admin)
	return admin, err
}

// DeleteAdmin deletes an administrator account.
func (c *Client) DeleteAdmin(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil, nil)
}

// Roles lists all assignable roles.
func (c *Client) Roles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := c.do(ctx, http.MethodGet, "/roles", nil, &roles)
	return roles, err
}
