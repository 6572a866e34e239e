// package formatter renders catalog listings to CSV, Markdown and plain text for CLI output and export
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// styleName renders the song's style for display, falling back to a dash.
func styleName(song models.Song) string {
	if song.Style != nil {
		return song.Style.Name
	}
	return "-"
}

// categoryNames joins a song's category names for one-line display.
func categoryNames(categories []models.Category) string {
	if len(categories) == 0 {
		return "-"
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// SongsToCSV converts songs to CSV with columns: ID, Code, Title, Writer, Style, Categories, YouTube
func SongsToCSV(songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Code", "Title", "Writer", "Style", "Categories", "YouTube"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			strconv.Itoa(song.ID),
			strconv.Itoa(song.Code),
			song.Title,
			song.SongWriter,
			styleName(song),
			categoryNames(song.Categories),
			song.YouTube,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SongsToMarkdown converts a page of songs to a Markdown listing
func SongsToMarkdown(page models.Paginated[models.Song]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Songs\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d (page %d of %d)\n\n", page.Total, page.CurrentPage, page.LastPage))

	for _, song := range page.Data {
		buf.WriteString(fmt.Sprintf("## %d. %s\n\n", song.Code, song.Title))
		if song.SongWriter != "" {
			buf.WriteString(fmt.Sprintf("**Writer**: %s\n", song.SongWriter))
		}
		if song.Style != nil {
			buf.WriteString(fmt.Sprintf("**Style**: %s\n", song.Style.Name))
		}
		if len(song.Categories) > 0 {
			buf.WriteString(fmt.Sprintf("**Categories**: %s\n", categoryNames(song.Categories)))
		}
		if song.YouTube != "" {
			buf.WriteString(fmt.Sprintf("**YouTube**: %s\n", song.YouTube))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// SongsToText converts a page of songs to plain text, one song per line
func SongsToText(page models.Paginated[models.Song]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Songs: %d total (page %d of %d)\n\n", page.Total, page.CurrentPage, page.LastPage))

	for _, song := range page.Data {
		stylePart := ""
		if song.Style != nil {
			stylePart = fmt.Sprintf(" [%s]", song.Style.Name)
		}
		buf.WriteString(fmt.Sprintf("#%d %s - %s%s\n", song.Code, song.Title, song.SongWriter, stylePart))
	}

	return buf.Bytes(), nil
}

// SuggestionsToText converts a page of suggestions to plain text with review status
func SuggestionsToText(page models.Paginated[models.SuggestSong]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Suggestions: %d total (page %d of %d)\n\n", page.Total, page.CurrentPage, page.LastPage))

	for _, s := range page.Data {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)", s.ID, s.Title, s.StatusLabel()))
		if s.Email != "" {
			buf.WriteString(fmt.Sprintf(" from %s", s.Email))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// AdminsToText converts a page of admins to plain text with their roles
func AdminsToText(page models.Paginated[models.Admin]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Admins: %d total (page %d of %d)\n\n", page.Total, page.CurrentPage, page.LastPage))

	for _, admin := range page.Data {
		roles := make([]string, len(admin.Roles))
		for i, r := range admin.Roles {
			roles[i] = r.Name
		}
		roleDisplay := "-"
		if len(roles) > 0 {
			roleDisplay = strings.Join(roles, ", ")
		}
		buf.WriteString(fmt.Sprintf("%d. %s <%s> [%s] %s\n", admin.ID, admin.Name, admin.Email, roleDisplay, admin.Status))
	}

	return buf.Bytes(), nil
}

// WriteSongsCSV exports songs to a CSV file.
//
// Defaults to songs.csv as the filename.
func WriteSongsCSV(songs []models.Song, path string) (string, error) {
	if path == "" {
		path = "songs.csv"
	}

	csvData, err := SongsToCSV(songs)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// WriteSongsMarkdown exports a page of songs to a Markdown file.
//
// Defaults to songs.md as the filename.
func WriteSongsMarkdown(page models.Paginated[models.Song], path string) (string, error) {
	if path == "" {
		path = "songs.md"
	}

	mdData, err := SongsToMarkdown(page)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(path, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return path, nil
}
