package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// SuggestSongQuery carries the filter and pagination parameters for SuggestSongs.
type SuggestSongQuery struct {
	Page       int
	Status     *int
	Search     string
	StyleID    *int
	CategoryID *int
}

func (q SuggestSongQuery) encode() string {
	params := url.Values{}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	if q.Status != nil {
		params.Set("status", strconv.Itoa(*q.Status))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.StyleID != nil {
		params.Set("style_id", strconv.Itoa(*q.StyleID))
	}
	if q.CategoryID != nil {
		params.Set("category_id", strconv.Itoa(*q.CategoryID))
	}

	return params.Encode()
}

// UpdateSuggestSongRequest partially updates a suggestion before review.
type UpdateSuggestSongRequest struct {
	Code          *int    `json:"code,omitempty"`
	Title         *string `json:"title,omitempty"`
	YouTube       *string `json:"youtube,omitempty"`
	Description   *string `json:"description,omitempty"`
	SongWriter    *string `json:"song_writer,omitempty"`
	StyleID       *int    `json:"style_id,omitempty"`
	Key           *string `json:"key,omitempty"`
	Lyrics        *string `json:"lyrics,omitempty"`
	MusicNotes    *string `json:"music_notes,omitempty"`
	PopularRating *int    `json:"popular_rating,omitempty"`
	Email         *string `json:"email,omitempty"`
	CategoryIDs   []int   `json:"category_ids,omitempty"`
}

// SuggestionStatus is the id/status pair echoed back by review endpoints.
type SuggestionStatus struct {
	ID     int `json:"id"`
	Status int `json:"status"`
}

// ApproveSuggestionResponse reports an approval and the song created from it.
type ApproveSuggestionResponse struct {
	Message    string           `json:"message"`
	Suggestion SuggestionStatus `json:"suggestion"`
	Song       models.Song      `json:"song"`
}

// CancelSuggestionResponse reports a cancellation.
type CancelSuggestionResponse struct {
	Message    string           `json:"message"`
	Suggestion SuggestionStatus `json:"suggestion"`
}

// SuggestSongs lists suggested songs matching the query.
func (c *Client) SuggestSongs(ctx context.Context, query SuggestSongQuery) (models.Paginated[models.SuggestSong], error) {
	var resp models.Paginated[models.SuggestSong]
	err := c.do(ctx, http.MethodGet, "/suggest-songs?"+query.encode(), nil, &resp)
	return resp, err
}

// SuggestSong retrieves a suggestion by id.
func (c *Client) SuggestSong(ctx context.Context, id int) (models.SuggestSong, error) {
	var suggestion models.SuggestSong
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/suggest-songs/%d", id), nil, &suggestion)
	return suggestion, err
}

// UpdateSuggestSong updates a suggestion before review.
func (c *Client) UpdateSuggestSong(ctx context.Context, id int, req UpdateSuggestSongRequest) (models.SuggestSong, error) {
	var suggestion models.SuggestSong
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/suggest-songs/%d", id), req, &suggestion)
	return suggestion, err
}

// ApproveSuggestSong approves a suggestion, creating a catalog song from it.
func (c *Client) ApproveSuggestSong(ctx context.Context, id int) (ApproveSuggestionResponse, error) {
	var resp ApproveSuggestionResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/suggest-songs/%d/approve", id), nil, &resp)
	return resp, err
}

// CancelSuggestSong cancels a suggestion.
func (c *Client) CancelSuggestSong(ctx context.Context, id int) (CancelSuggestionResponse, error) {
	var resp CancelSuggestionResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/suggest-songs/%d/cancel", id), nil, &resp)
	return resp, err
}
