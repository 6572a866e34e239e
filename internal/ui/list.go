package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

var (
	_ list.Item = songItem{}
	_ list.Item = catalogItem{}
	_ list.Item = suggestionItem{}
	_ list.Item = adminItem{}
)

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return fmt.Sprintf("#%d %s", i.song.Code, i.song.Title) }
func (i songItem) Description() string {
	desc := i.song.SongWriter
	if desc == "" {
		desc = "unknown writer"
	}
	if i.song.Style != nil {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Style.Name)
	}
	if i.song.YouTube != "" {
		desc = fmt.Sprintf("%s • ▶", desc)
	}
	return desc
}

// catalogItem is a generic id/name list entry used by the style, category and
// language views.
type catalogItem struct {
	id   int
	name string
	desc string
}

func (i catalogItem) FilterValue() string { return i.name }
func (i catalogItem) Title() string       { return i.name }
func (i catalogItem) Description() string {
	if i.desc != "" {
		return i.desc
	}
	return fmt.Sprintf("id %d", i.id)
}

// suggestionItem wraps [models.SuggestSong] to implement [list.Item].
type suggestionItem struct {
	suggestion models.SuggestSong
}

func (i suggestionItem) FilterValue() string { return i.suggestion.Title }
func (i suggestionItem) Title() string       { return i.suggestion.Title }
func (i suggestionItem) Description() string {
	desc := i.suggestion.StatusLabel()
	if i.suggestion.Email != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.suggestion.Email)
	}
	return desc
}

// adminItem wraps [models.Admin] to implement [list.Item].
type adminItem struct {
	admin models.Admin
}

func (i adminItem) FilterValue() string { return i.admin.Name }
func (i adminItem) Title() string       { return i.admin.Name }
func (i adminItem) Description() string {
	desc := i.admin.Email
	for _, role := range i.admin.Roles {
		desc = fmt.Sprintf("%s • %s", desc, role.Name)
	}
	return desc
}
