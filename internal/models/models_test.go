package models

import "testing"

func TestAdmin(t *testing.T) {
	admin := Admin{
		ID:    7,
		Name:  "Editor",
		Email: "editor@example.com",
		Roles: []Role{{ID: 2, Name: "editor"}, {ID: 3, Name: "reviewer"}},
	}

	t.Run("HasRole", func(t *testing.T) {
		if !admin.HasRole("editor") {
			t.Error("expected HasRole(editor) true")
		}
		if admin.HasRole("super_admin") {
			t.Error("expected HasRole(super_admin) false")
		}
		if (Admin{}).HasRole("editor") {
			t.Error("expected false for empty role set")
		}
	})

	t.Run("HasRoleID", func(t *testing.T) {
		if !admin.HasRoleID(3) {
			t.Error("expected HasRoleID(3) true")
		}
		if admin.HasRoleID(1) {
			t.Error("expected HasRoleID(1) false")
		}
	})

	t.Run("IsZero", func(t *testing.T) {
		if admin.IsZero() {
			t.Error("expected populated admin not zero")
		}
		if !(Admin{}).IsZero() {
			t.Error("expected empty admin zero")
		}
	})
}

func TestSuggestSongStatusLabel(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{SuggestionCancelled, "cancelled"},
		{SuggestionPending, "pending"},
		{SuggestionApproved, "approved"},
		{99, "unknown"},
	}

	for _, tc := range cases {
		if got := (SuggestSong{Status: tc.status}).StatusLabel(); got != tc.want {
			t.Errorf("StatusLabel(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
