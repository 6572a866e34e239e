package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/kamarlaylatt/calvary-admin-front/internal/store"
	tu "github.com/kamarlaylatt/calvary-admin-front/internal/testing"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(tu.MustOpenDB(t))
}

func superAdmin() models.Admin {
	return models.Admin{
		ID:    1,
		Name:  "Root",
		Email: "root@example.com",
		Roles: []models.Role{{ID: SuperAdminRoleID, Name: "super_admin"}},
	}
}

func editor() models.Admin {
	return models.Admin{
		ID:    2,
		Name:  "Editor",
		Email: "editor@example.com",
		Roles: []models.Role{{ID: 2, Name: "editor"}},
	}
}

func TestSession(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("New", func(t *testing.T) {
		t.Run("Starts Unauthenticated Without Persisted Token", func(t *testing.T) {
			sess, err := New(&tu.MockAPI{}, newStore(t), logger)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if sess.Authenticated() {
				t.Error("expected unauthenticated session")
			}
			if !sess.Profile().IsZero() {
				t.Errorf("expected empty profile, got %+v", sess.Profile())
			}
		})

		t.Run("Rehydrates Without Network Call", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("persisted-token"); err != nil {
				t.Fatal(err)
			}
			if err := st.SetProfile(editor()); err != nil {
				t.Fatal(err)
			}

			mock := &tu.MockAPI{
				AdminProfileFn: func(ctx context.Context) (models.Admin, error) {
					t.Error("expected no profile fetch during rehydration")
					return models.Admin{}, nil
				},
			}

			sess, err := New(mock, st, logger)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !sess.Authenticated() {
				t.Error("expected authenticated session from persisted token")
			}
			if sess.Token() != "persisted-token" {
				t.Errorf("expected persisted token, got %q", sess.Token())
			}
			if sess.Profile().Email != "editor@example.com" {
				t.Errorf("expected persisted profile, got %+v", sess.Profile())
			}
			if mock.CurrentToken != "persisted-token" {
				t.Errorf("expected token mirrored into API client, got %q", mock.CurrentToken)
			}
		})

		t.Run("Tolerates Token Without Profile Snapshot", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("lonely-token"); err != nil {
				t.Fatal(err)
			}

			sess, err := New(&tu.MockAPI{}, st, logger)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !sess.Authenticated() {
				t.Error("expected authenticated session")
			}
			if !sess.Profile().IsZero() {
				t.Errorf("expected empty profile, got %+v", sess.Profile())
			}
			if sess.IsSuperAdmin() {
				t.Error("expected no privileges without a profile")
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("Persists Token and Profile", func(t *testing.T) {
			st := newStore(t)
			mock := &tu.MockAPI{
				LoginFn: func(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error) {
					if creds.Email != "root@example.com" {
						t.Errorf("unexpected credentials: %+v", creds)
					}
					return &api.LoginResponse{Token: "fresh", Admin: superAdmin()}, nil
				},
			}

			sess, err := New(mock, st, logger)
			if err != nil {
				t.Fatal(err)
			}

			if err := sess.Login(context.Background(), api.Credentials{Email: "root@example.com", Password: "pw"}); err != nil {
				t.Fatalf("expected login to succeed, got %v", err)
			}

			if !sess.Authenticated() || sess.Token() != "fresh" {
				t.Errorf("expected authenticated with fresh token, got %q", sess.Token())
			}

			token, ok, err := st.Token()
			if err != nil || !ok || token != "fresh" {
				t.Errorf("expected token persisted, got %q ok=%v err=%v", token, ok, err)
			}
			profile, err := st.Profile()
			if err != nil || profile.Email != "root@example.com" {
				t.Errorf("expected profile persisted, got %+v err=%v", profile, err)
			}
		})

		t.Run("Leaves State Untouched On Failure", func(t *testing.T) {
			st := newStore(t)
			mock := &tu.MockAPI{
				LoginFn: func(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error) {
					return nil, errors.New("invalid credentials")
				},
			}

			sess, err := New(mock, st, logger)
			if err != nil {
				t.Fatal(err)
			}

			if err := sess.Login(context.Background(), api.Credentials{Email: "x", Password: "y"}); err == nil {
				t.Fatal("expected login error")
			}
			if sess.Authenticated() {
				t.Error("expected session to stay unauthenticated")
			}
			if _, ok, _ := st.Token(); ok {
				t.Error("expected no token persisted")
			}
		})
	})

	t.Run("Logout", func(t *testing.T) {
		t.Run("Clears Locally Even When Remote Fails", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("tok"); err != nil {
				t.Fatal(err)
			}
			if err := st.SetProfile(editor()); err != nil {
				t.Fatal(err)
			}

			mock := &tu.MockAPI{
				LogoutFn: func(ctx context.Context) error {
					return errors.New("network down")
				},
			}

			sess, err := New(mock, st, logger)
			if err != nil {
				t.Fatal(err)
			}

			err = sess.Logout(context.Background())
			if err == nil {
				t.Fatal("expected remote error surfaced")
			}
			if sess.Authenticated() {
				t.Error("expected session cleared despite remote failure")
			}
			if !sess.Profile().IsZero() {
				t.Errorf("expected profile cleared, got %+v", sess.Profile())
			}
			if _, ok, _ := st.Token(); ok {
				t.Error("expected persisted token cleared")
			}
			if mock.CurrentToken != "" {
				t.Errorf("expected API token cleared, got %q", mock.CurrentToken)
			}
		})
	})

	t.Run("CheckAuth", func(t *testing.T) {
		t.Run("Detects Out Of Band Invalidation", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("tok"); err != nil {
				t.Fatal(err)
			}
			if err := st.SetProfile(superAdmin()); err != nil {
				t.Fatal(err)
			}

			sess, err := New(&tu.MockAPI{}, st, logger)
			if err != nil {
				t.Fatal(err)
			}
			if !sess.Authenticated() {
				t.Fatal("expected authenticated session")
			}

			// The API client clears the persisted token on 401 without going
			// through the session.
			if err := st.ClearToken(); err != nil {
				t.Fatal(err)
			}

			if sess.CheckAuth() {
				t.Error("expected CheckAuth to report unauthenticated")
			}
			if sess.Authenticated() {
				t.Error("expected in-memory state cleared")
			}
			if sess.IsSuperAdmin() {
				t.Error("expected privileges dropped with the session")
			}
		})

		t.Run("Keeps Valid Session", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("tok"); err != nil {
				t.Fatal(err)
			}
			if err := st.SetProfile(editor()); err != nil {
				t.Fatal(err)
			}

			sess, err := New(&tu.MockAPI{}, st, logger)
			if err != nil {
				t.Fatal(err)
			}
			if !sess.CheckAuth() {
				t.Error("expected CheckAuth true with persisted token")
			}
			profile := sess.Profile()
			if profile.Email != "editor@example.com" {
				t.Errorf("expected profile reloaded, got %+v", profile)
			}
			if len(profile.Roles) != 1 || !profile.HasRole("editor") {
				t.Errorf("expected role set to survive the round trip, got %+v", profile.Roles)
			}
		})
	})

	t.Run("RefreshProfile", func(t *testing.T) {
		st := newStore(t)
		if err := st.SetToken("tok"); err != nil {
			t.Fatal(err)
		}

		updated := editor()
		updated.Name = "Renamed Editor"
		mock := &tu.MockAPI{
			AdminProfileFn: func(ctx context.Context) (models.Admin, error) {
				return updated, nil
			},
		}

		sess, err := New(mock, st, logger)
		if err != nil {
			t.Fatal(err)
		}

		if err := sess.RefreshProfile(context.Background()); err != nil {
			t.Fatalf("expected refresh to succeed, got %v", err)
		}
		if sess.Profile().Name != "Renamed Editor" {
			t.Errorf("expected in-memory profile updated, got %+v", sess.Profile())
		}
		persisted, err := st.Profile()
		if err != nil || persisted.Name != "Renamed Editor" {
			t.Errorf("expected durable snapshot updated, got %+v err=%v", persisted, err)
		}
	})

	t.Run("Roles", func(t *testing.T) {
		t.Run("Can Matches By Name", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("tok"); err != nil {
				t.Fatal(err)
			}
			if err := st.SetProfile(editor()); err != nil {
				t.Fatal(err)
			}

			sess, err := New(&tu.MockAPI{}, st, logger)
			if err != nil {
				t.Fatal(err)
			}
			if !sess.Can("editor") {
				t.Error("expected Can(editor) true")
			}
			if sess.Can("super_admin") {
				t.Error("expected Can(super_admin) false")
			}
			if sess.IsSuperAdmin() {
				t.Error("expected IsSuperAdmin false for editor")
			}
		})

		t.Run("IsSuperAdmin Matches By ID", func(t *testing.T) {
			st := newStore(t)
			if err := st.SetToken("tok"); err != nil {
				t.Fatal(err)
			}
			admin := models.Admin{ID: 9, Roles: []models.Role{{ID: SuperAdminRoleID, Name: "renamed"}}}
			if err := st.SetProfile(admin); err != nil {
				t.Fatal(err)
			}

			sess, err := New(&tu.MockAPI{}, st, logger)
			if err != nil {
				t.Fatal(err)
			}
			if !sess.IsSuperAdmin() {
				t.Error("expected IsSuperAdmin true by role id regardless of name")
			}
		})
	})
}
