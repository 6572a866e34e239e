package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin authenticates with email and password and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteLogin); err != nil {
		return err
	}

	email := cmd.String("email")
	password := cmd.String("password")

	if password == "" {
		r.writePlain("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	if password == "" {
		return fmt.Errorf("%w: password is required", shared.ErrMissingArgument)
	}

	r.logger.Info("logging in", "email", email)

	if err := r.session.Login(ctx, api.Credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	profile := r.session.Profile()
	r.writePlain("✓ Logged in as %s <%s>\n", profile.Name, profile.Email)
	if r.session.IsSuperAdmin() {
		r.writePlain("Role: super admin\n")
	}
	return nil
}

// AuthLogout revokes the session. Local credentials are cleared even when the
// server cannot be reached, so a remote failure is reported but not fatal.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if !r.session.Authenticated() {
		r.writePlain("Not logged in.\n")
		return nil
	}

	err := r.session.Logout(ctx)
	r.writePlain("✓ Logged out\n")
	if err != nil {
		r.logger.Warn("server-side logout failed, local session cleared", "error", err)
	}
	return nil
}

// AuthStatus reports the locally known authentication state and recent audit events.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("events")

	if r.session.CheckAuth() {
		profile := r.session.Profile()
		r.writePlain("Logged in as %s <%s>\n", profile.Name, profile.Email)
		if len(profile.Roles) > 0 {
			names := make([]string, 0, len(profile.Roles))
			for _, role := range profile.Roles {
				names = append(names, role.Name)
			}
			r.writePlain("Roles: %s\n", strings.Join(names, ", "))
		}
	} else {
		r.writePlain("Not logged in.\n")
	}

	events, err := r.store.AuthEvents(limit)
	if err != nil {
		return fmt.Errorf("failed to load auth events: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	r.writePlainln("Recent auth events:")
	for _, ev := range events {
		r.writePlain("%s  %-12s %s\n", ev.CreatedAt.Format("2006-01-02 15:04:05"), ev.Event, ev.Detail)
	}
	return nil
}

// AuthWhoami fetches the authenticated admin's profile from the server.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteProfile); err != nil {
		return err
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.session.RefreshProfile(ctx); err != nil {
		if errors.Is(err, shared.ErrUnauthorized) {
			return fmt.Errorf("%w: session expired, run 'calvary auth login'", shared.ErrNotAuthenticated)
		}
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	profile := r.session.Profile()
	if useJSON {
		return r.writeJSON(profile, pretty)
	}

	r.writePlain("ID:     %d\n", profile.ID)
	r.writePlain("Name:   %s\n", profile.Name)
	r.writePlain("Email:  %s\n", profile.Email)
	if profile.Status != "" {
		r.writePlain("Status: %s\n", profile.Status)
	}
	for _, role := range profile.Roles {
		r.writePlain("Role:   %s (id %d)\n", role.Name, role.ID)
	}
	return nil
}
