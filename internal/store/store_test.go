package store

import (
	"testing"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	tu "github.com/kamarlaylatt/calvary-admin-front/internal/testing"
)

func TestStore(t *testing.T) {
	t.Run("Get and Set", func(t *testing.T) {
		st := New(tu.MustOpenDB(t))

		if _, ok, err := st.Get("missing"); err != nil || ok {
			t.Errorf("expected absent key, got ok=%v err=%v", ok, err)
		}

		if err := st.Set("k", "v1"); err != nil {
			t.Fatalf("expected set to succeed, got %v", err)
		}
		if value, ok, _ := st.Get("k"); !ok || value != "v1" {
			t.Errorf("expected v1, got %q ok=%v", value, ok)
		}

		if err := st.Set("k", "v2"); err != nil {
			t.Fatalf("expected overwrite to succeed, got %v", err)
		}
		if value, _, _ := st.Get("k"); value != "v2" {
			t.Errorf("expected upserted value v2, got %q", value)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		st := New(tu.MustOpenDB(t))

		if err := st.Delete("absent"); err != nil {
			t.Errorf("expected deleting absent key to succeed, got %v", err)
		}

		if err := st.Set("k", "v"); err != nil {
			t.Fatal(err)
		}
		if err := st.Delete("k"); err != nil {
			t.Fatalf("expected delete to succeed, got %v", err)
		}
		if _, ok, _ := st.Get("k"); ok {
			t.Error("expected key removed")
		}
	})

	t.Run("Token", func(t *testing.T) {
		st := New(tu.MustOpenDB(t))

		if _, ok, _ := st.Token(); ok {
			t.Error("expected no token initially")
		}

		if err := st.SetToken("bearer-1"); err != nil {
			t.Fatal(err)
		}
		if token, ok, _ := st.Token(); !ok || token != "bearer-1" {
			t.Errorf("expected bearer-1, got %q ok=%v", token, ok)
		}

		if err := st.ClearToken(); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := st.Token(); ok {
			t.Error("expected token cleared")
		}
	})

	t.Run("Profile", func(t *testing.T) {
		t.Run("Round Trip", func(t *testing.T) {
			st := New(tu.MustOpenDB(t))

			admin := models.Admin{
				ID:    4,
				Name:  "Admin",
				Email: "admin@example.com",
				Roles: []models.Role{{ID: 1, Name: "super_admin"}},
			}
			if err := st.SetProfile(admin); err != nil {
				t.Fatalf("expected set profile to succeed, got %v", err)
			}

			got, err := st.Profile()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Email != admin.Email || len(got.Roles) != 1 {
				t.Errorf("expected profile round trip, got %+v", got)
			}
		})

		t.Run("Absent Yields Empty Default", func(t *testing.T) {
			st := New(tu.MustOpenDB(t))

			got, err := st.Profile()
			if err != nil {
				t.Fatalf("expected no error for absent profile, got %v", err)
			}
			if !got.IsZero() {
				t.Errorf("expected zero admin, got %+v", got)
			}
		})

		t.Run("Malformed Snapshot Yields Empty Default", func(t *testing.T) {
			st := New(tu.MustOpenDB(t))

			if err := st.Set(KeyAdminDetails, "{not json"); err != nil {
				t.Fatal(err)
			}

			got, err := st.Profile()
			if err != nil {
				t.Fatalf("expected malformed snapshot tolerated, got %v", err)
			}
			if !got.IsZero() {
				t.Errorf("expected zero admin, got %+v", got)
			}
		})
	})

	t.Run("Clear", func(t *testing.T) {
		st := New(tu.MustOpenDB(t))

		if err := st.SetToken("tok"); err != nil {
			t.Fatal(err)
		}
		if err := st.SetProfile(models.Admin{ID: 1, Email: "a@b.c"}); err != nil {
			t.Fatal(err)
		}

		if err := st.Clear(); err != nil {
			t.Fatalf("expected clear to succeed, got %v", err)
		}
		if _, ok, _ := st.Token(); ok {
			t.Error("expected token cleared")
		}
		got, err := st.Profile()
		if err != nil || !got.IsZero() {
			t.Errorf("expected profile cleared, got %+v err=%v", got, err)
		}
	})

	t.Run("AuthEvents", func(t *testing.T) {
		st := New(tu.MustOpenDB(t))

		if events, err := st.AuthEvents(10); err != nil || len(events) != 0 {
			t.Errorf("expected empty trail, got %v err=%v", events, err)
		}

		for _, ev := range []string{EventLogin, EventLogout, EventInvalidated} {
			if err := st.RecordAuthEvent(ev, "detail for "+ev); err != nil {
				t.Fatalf("expected record to succeed, got %v", err)
			}
		}

		events, err := st.AuthEvents(10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		for _, ev := range events {
			if ev.ID == "" {
				t.Error("expected generated event id")
			}
			if ev.CreatedAt.IsZero() {
				t.Error("expected event timestamp")
			}
		}

		if limited, _ := st.AuthEvents(2); len(limited) != 2 {
			t.Errorf("expected limit respected, got %d events", len(limited))
		}
	})
}
