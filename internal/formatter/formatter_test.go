package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	tu "github.com/kamarlaylatt/calvary-admin-front/internal/testing"
)

func samplePage() models.Paginated[models.Song] {
	styleID := 2
	return models.Paginated[models.Song]{
		Data: []models.Song{
			{
				ID:         1,
				Code:       101,
				Title:      "Amazing Grace",
				SongWriter: "John Newton",
				StyleID:    &styleID,
				Style:      &models.Style{ID: 2, Name: "Hymn"},
				Categories: []models.Category{{ID: 1, Name: "Worship"}, {ID: 3, Name: "Classic"}},
				YouTube:    "https://youtube.com/watch?v=abc",
			},
			{
				ID:    2,
				Code:  102,
				Title: "Untitled Draft",
			},
		},
		CurrentPage: 1,
		LastPage:    3,
		PerPage:     15,
		Total:       42,
	}
}

func TestFormatter(t *testing.T) {
	t.Run("SongsToCSV", func(t *testing.T) {
		data, err := SongsToCSV(samplePage().Data)
		if err != nil {
			t.Fatalf("SongsToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Code,Title,Writer,Style,Categories,YouTube") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Amazing Grace") {
			t.Error("CSV missing song title")
		}
		if !strings.Contains(output, "Worship, Classic") {
			t.Error("CSV missing joined categories")
		}
		if !strings.Contains(output, ",-,-,") {
			t.Error("CSV missing dash placeholders for song without style or categories")
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 3 {
			t.Errorf("expected header plus 2 records, got %d lines", len(lines))
		}
	})

	t.Run("SongsToMarkdown", func(t *testing.T) {
		data, err := SongsToMarkdown(samplePage())
		if err != nil {
			t.Fatalf("SongsToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "# Songs") {
			t.Error("Markdown missing heading")
		}
		if !strings.Contains(output, "**Total**: 42 (page 1 of 3)") {
			t.Errorf("Markdown missing pagination line, got: %s", output)
		}
		if !strings.Contains(output, "## 101. Amazing Grace") {
			t.Error("Markdown missing song section")
		}
		if !strings.Contains(output, "**Writer**: John Newton") {
			t.Error("Markdown missing writer")
		}
		if strings.Contains(output, "**Style**: \n") {
			t.Error("Markdown should omit empty style lines")
		}
	})

	t.Run("SongsToText", func(t *testing.T) {
		data, err := SongsToText(samplePage())
		if err != nil {
			t.Fatalf("SongsToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Songs: 42 total (page 1 of 3)") {
			t.Errorf("text missing summary, got: %s", output)
		}
		if !strings.Contains(output, "#101 Amazing Grace - John Newton [Hymn]") {
			t.Errorf("text missing song line, got: %s", output)
		}
	})

	t.Run("SuggestionsToText", func(t *testing.T) {
		page := models.Paginated[models.SuggestSong]{
			Data: []models.SuggestSong{
				{ID: 5, Title: "New Song", Status: models.SuggestionPending, Email: "fan@example.com"},
				{ID: 6, Title: "Old Song", Status: models.SuggestionApproved},
			},
			CurrentPage: 1,
			LastPage:    1,
			Total:       2,
		}

		data, err := SuggestionsToText(page)
		if err != nil {
			t.Fatalf("SuggestionsToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "5. New Song (pending) from fan@example.com") {
			t.Errorf("text missing pending suggestion, got: %s", output)
		}
		if !strings.Contains(output, "6. Old Song (approved)") {
			t.Errorf("text missing approved suggestion, got: %s", output)
		}
	})

	t.Run("AdminsToText", func(t *testing.T) {
		page := models.Paginated[models.Admin]{
			Data: []models.Admin{
				{ID: 1, Name: "Root", Email: "root@example.com", Status: "active", Roles: []models.Role{{ID: 1, Name: "super_admin"}}},
				{ID: 2, Name: "NoRole", Email: "nr@example.com"},
			},
			CurrentPage: 1,
			LastPage:    1,
			Total:       2,
		}

		data, err := AdminsToText(page)
		if err != nil {
			t.Fatalf("AdminsToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Root <root@example.com> [super_admin] active") {
			t.Errorf("text missing admin line, got: %s", output)
		}
		if !strings.Contains(output, "[-]") {
			t.Errorf("text missing dash for roleless admin, got: %s", output)
		}
	})

	t.Run("WriteSongsCSV", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.csv")

		got, err := WriteSongsCSV(samplePage().Data, path)
		if err != nil {
			t.Fatalf("WriteSongsCSV failed: %v", err)
		}
		if got != path {
			t.Errorf("expected returned path %s, got %s", path, got)
		}
		tu.AssertFileExists(t, path)

		content := tu.MustReadFile(t, path)
		if !strings.Contains(content, "Amazing Grace") {
			t.Error("written CSV missing song")
		}
	})

	t.Run("WriteSongsMarkdown", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.md")

		got, err := WriteSongsMarkdown(samplePage(), path)
		if err != nil {
			t.Fatalf("WriteSongsMarkdown failed: %v", err)
		}
		if got != path {
			t.Errorf("expected returned path %s, got %s", path, got)
		}
		tu.AssertFileExists(t, path)
	})
}
