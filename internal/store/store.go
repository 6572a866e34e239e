package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
)

// Storage keys for the persisted session slot.
const (
	KeyToken        = "admin_token"
	KeyAdminDetails = "admin_details"
)

// Auth event names recorded in the audit trail.
const (
	EventLogin       = "login"
	EventLogout      = "logout"
	EventInvalidated = "invalidated"
)

// Store persists session state in a SQLite key-value table.
type Store struct {
	db *sql.DB
}

// New creates a Store backed by the given database connection.
// The caller is responsible for running migrations first.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get retrieves the value for key. The second return is false when the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query storage: %w", err)
	}
	return value, true, nil
}

// Set writes the value for key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	query := `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// Delete removes the value for key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete storage key: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, if any.
func (s *Store) Token() (string, bool, error) {
	return s.Get(KeyToken)
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

// ClearToken removes the persisted bearer token.
func (s *Store) ClearToken() error {
	return s.Delete(KeyToken)
}

// Profile returns the persisted admin profile snapshot.
// Absent or unreadable snapshots yield the empty default without error so
// callers conservatively fall back to an unprivileged profile.
func (s *Store) Profile() (models.Admin, error) {
	raw, ok, err := s.Get(KeyAdminDetails)
	if err != nil {
		return models.Admin{}, err
	}
	if !ok {
		return models.Admin{}, nil
	}

	var admin models.Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		return models.Admin{}, nil
	}
	return admin, nil
}

// SetProfile persists a JSON snapshot of the admin profile.
func (s *Store) SetProfile(admin models.Admin) error {
	raw, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.Set(KeyAdminDetails, string(raw))
}

// Clear removes both the token and the profile snapshot.
func (s *Store) Clear() error {
	if err := s.Delete(KeyToken); err != nil {
		return err
	}
	return s.Delete(KeyAdminDetails)
}

// AuthEvent is one row of the auth audit trail.
type AuthEvent struct {
	ID        string
	Event     string
	Detail    string
	CreatedAt time.Time
}

// RecordAuthEvent appends an event to the audit trail.
func (s *Store) RecordAuthEvent(event, detail string) error {
	id := shared.GenerateID()
	query := "INSERT INTO auth_events (id, event, detail, created_at) VALUES (?, ?, ?, ?)"
	if _, err := s.db.Exec(query, id, event, detail, time.Now()); err != nil {
		return fmt.Errorf("failed to record auth event: %w", err)
	}
	return nil
}

// AuthEvents returns the most recent audit entries, newest first.
func (s *Store) AuthEvents(limit int) ([]AuthEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT id, event, COALESCE(detail, ''), created_at FROM auth_events ORDER BY created_at DESC LIMIT ?"
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query auth events: %w", err)
	}
	defer rows.Close()

	var events []AuthEvent
	for rows.Next() {
		var ev AuthEvent
		if err := rows.Scan(&ev.ID, &ev.Event, &ev.Detail, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan auth event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return events, nil
}
