// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
)

// MockAPI is a configurable test double for the session layer's API surface.
type MockAPI struct {
	LoginFn        func(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	LogoutFn       func(ctx context.Context) error
	AdminProfileFn func(ctx context.Context) (models.Admin, error)
	CurrentToken   string
}

func (m *MockAPI) Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, creds)
	}
	return &api.LoginResponse{}, nil
}

func (m *MockAPI) Logout(ctx context.Context) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx)
	}
	return nil
}

func (m *MockAPI) AdminProfile(ctx context.Context) (models.Admin, error) {
	if m.AdminProfileFn != nil {
		return m.AdminProfileFn(ctx)
	}
	return models.Admin{}, nil
}

func (m *MockAPI) SetToken(token string) {
	m.CurrentToken = token
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// MustOpenDB opens a migrated in-memory credential database for tests.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
