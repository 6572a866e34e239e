package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/formatter"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// AdminsList lists administrator accounts. Super admin only.
func (r *Runner) AdminsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteAdmins); err != nil {
		return err
	}

	page, err := r.client.Admins(ctx, cmd.Int("page"), cmd.String("search"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	text, err := formatter.AdminsToText(page)
	if err != nil {
		return fmt.Errorf("failed to format admins: %w", err)
	}
	return r.writePlain("%s", text)
}

// AdminsCreate creates an administrator account. Super admin only.
func (r *Runner) AdminsCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteAdmins); err != nil {
		return err
	}

	password := cmd.String("password")
	req := api.CreateAdminRequest{
		Name:                 cmd.String("name"),
		Email:                cmd.String("email"),
		Password:             password,
		PasswordConfirmation: password,
		Status:               cmd.String("status"),
		Roles:                cmd.IntSlice("role-id"),
	}

	admin, err := r.client.CreateAdmin(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("admin created", "id", admin.ID, "email", admin.Email)
	r.writePlain("✓ Created admin #%d: %s <%s>\n", admin.ID, admin.Name, admin.Email)
	return nil
}

// AdminsUpdate applies a partial update to an administrator account. Super admin only.
func (r *Runner) AdminsUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteAdmins); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: admin id is required", shared.ErrMissingArgument)
	}

	req := api.UpdateAdminRequest{
		Name:                 optString(cmd, "name"),
		Email:                optString(cmd, "email"),
		Password:             optString(cmd, "password"),
		PasswordConfirmation: optString(cmd, "password"),
		Status:               optString(cmd, "status"),
	}
	if cmd.IsSet("role-id") {
		req.Roles = cmd.IntSlice("role-id")
	}

	admin, err := r.client.UpdateAdmin(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated admin #%d: %s <%s>\n", admin.ID, admin.Name, admin.Email)
	return nil
}

// AdminsDelete removes an administrator account. Super admin only.
func (r *Runner) AdminsDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteAdmins); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: admin id is required", shared.ErrMissingArgument)
	}

	if id == r.session.Profile().ID {
		return fmt.Errorf("%w: cannot delete the account you are logged in as", shared.ErrInvalidInput)
	}

	if err := r.client.DeleteAdmin(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("admin deleted", "id", id)
	r.writePlain("✓ Deleted admin #%d\n", id)
	return nil
}

// RolesList lists the roles assignable to admins. Super admin only.
func (r *Runner) RolesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteAdmins); err != nil {
		return err
	}

	roles, err := r.client.Roles(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(roles, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d roles:\n\n", len(roles))
	for _, role := range roles {
		r.writePlain("%4d  %s\n", role.ID, strings.TrimSpace(role.Name))
	}
	return nil
}
