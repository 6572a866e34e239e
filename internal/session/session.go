package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/store"
)

// SuperAdminRoleID is the role id the server designates as super admin.
// Holding a role with this id grants access to admin-management views.
// No further semantics are attached to the id.
const SuperAdminRoleID = 1

// API is the slice of the HTTP collaborator the session mutates through.
type API interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	Logout(ctx context.Context) error
	AdminProfile(ctx context.Context) (models.Admin, error)
	SetToken(token string)
}

// Storage is the durable slot the session persists to and rehydrates from.
type Storage interface {
	Token() (string, bool, error)
	SetToken(token string) error
	Profile() (models.Admin, error)
	SetProfile(admin models.Admin) error
	Clear() error
	RecordAuthEvent(event, detail string) error
}

// Session holds the current bearer token and admin profile.
// One Session exists per running client, owned by the application root and
// passed to the router and views; there is no package-level state.
type Session struct {
	api     API
	storage Storage
	logger  *log.Logger

	mu      sync.RWMutex
	token   string
	profile models.Admin
}

// New creates a Session rehydrated from durable storage. If a token is
// persisted the session is treated as authenticated immediately, with the
// persisted profile snapshot if one exists. No network call is made.
func New(apiClient API, storage Storage, logger *log.Logger) (*Session, error) {
	s := &Session{
		api:     apiClient,
		storage: storage,
		logger:  logger,
	}

	token, ok, err := storage.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted token: %w", err)
	}
	if !ok {
		return s, nil
	}

	profile, err := storage.Profile()
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted profile: %w", err)
	}

	s.setState(token, profile)
	return s, nil
}

// setState applies token and profile as a single transition and mirrors the
// token into the API client. No reader can observe a token without its
// matching profile.
func (s *Session) setState(token string, profile models.Admin) {
	s.mu.Lock()
	s.token = token
	s.profile = profile
	s.mu.Unlock()
	s.api.SetToken(token)
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns the current admin profile, or the empty default when
// unauthenticated.
func (s *Session) Profile() models.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Login exchanges credentials for a session. On success the token and profile
// are stored in memory and durably; on failure prior state is untouched and
// the error is returned for the caller to display.
func (s *Session) Login(ctx context.Context, creds api.Credentials) error {
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	if err := s.storage.SetToken(resp.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.storage.SetProfile(resp.Admin); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	if err := s.storage.RecordAuthEvent(store.EventLogin, resp.Admin.Email); err != nil {
		s.logger.Warn("failed to record login event", "error", err)
	}

	s.setState(resp.Token, resp.Admin)
	s.logger.Info("logged in", "admin", resp.Admin.Email)
	return nil
}

// Logout revokes the session. Local state (token, profile and durable
// entries) is cleared unconditionally before the remote call's error, if any, is
// returned. The caller may ignore the error: locally the user is logged out
// either way.
func (s *Session) Logout(ctx context.Context) error {
	remoteErr := s.api.Logout(ctx)

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
	}
	if err := s.storage.RecordAuthEvent(store.EventLogout, ""); err != nil {
		s.logger.Warn("failed to record logout event", "error", err)
	}

	s.setState("", models.Admin{})

	if remoteErr != nil {
		return fmt.Errorf("remote logout failed: %w", remoteErr)
	}
	return nil
}

// CheckAuth re-derives authentication from durable storage. Handles the case
// where the token was cleared out-of-band, e.g. by the API client's 401
// handling, and reloads the profile snapshot while still authenticated.
// Returns the resulting authentication state.
func (s *Session) CheckAuth() bool {
	token, ok, err := s.storage.Token()
	if err != nil {
		s.logger.Warn("failed to re-read persisted token", "error", err)
		return s.Authenticated()
	}

	if !ok {
		s.setState("", models.Admin{})
		return false
	}

	profile, err := s.storage.Profile()
	if err != nil {
		s.logger.Warn("failed to re-read persisted profile", "error", err)
		profile = models.Admin{}
	}

	s.setState(token, profile)
	return true
}

// RefreshProfile re-fetches the admin's profile from the server and updates
// both the in-memory state and the durable snapshot.
func (s *Session) RefreshProfile(ctx context.Context) error {
	admin, err := s.api.AdminProfile(ctx)
	if err != nil {
		return err
	}

	if err := s.storage.SetProfile(admin); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}

	s.mu.Lock()
	s.profile = admin
	s.mu.Unlock()
	return nil
}

// Can reports whether the current profile holds a role with the given name.
func (s *Session) Can(roleName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.HasRole(roleName)
}

// IsSuperAdmin reports whether the current profile holds the super-admin role.
// False for an empty role set.
func (s *Session) IsSuperAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.HasRoleID(SuperAdminRoleID)
}
