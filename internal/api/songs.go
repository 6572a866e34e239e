package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// SongQuery carries the filter, sort and pagination parameters for Songs.
// Nil pointer fields are omitted from the query string.
type SongQuery struct {
	Page            int
	Search          string
	StyleID         *int
	CategoryIDs     []int
	SongLanguageIDs []int
	SortBy          string // "created_at" or "id"
	SortOrder       string // "asc" or "desc"
	ID              *int
}

func (q SongQuery) encode() string {
	params := url.Values{}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.StyleID != nil {
		params.Set("style_id", strconv.Itoa(*q.StyleID))
	}
	for _, id := range q.CategoryIDs {
		params.Add("category_ids[]", strconv.Itoa(id))
	}
	for _, id := range q.SongLanguageIDs {
		params.Add("song_language_ids[]", strconv.Itoa(id))
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sort_order", q.SortOrder)
	}
	if q.ID != nil {
		params.Set("id", strconv.Itoa(*q.ID))
	}

	return params.Encode()
}

// CreateSongRequest creates a catalog song.
type CreateSongRequest struct {
	Title           string `json:"title"`
	YouTube         string `json:"youtube,omitempty"`
	Description     string `json:"description,omitempty"`
	SongWriter      string `json:"song_writer,omitempty"`
	StyleID         *int   `json:"style_id,omitempty"`
	Lyrics          string `json:"lyrics,omitempty"`
	MusicNotes      string `json:"music_notes,omitempty"`
	PopularRating   int    `json:"popular_rating,omitempty"`
	CategoryIDs     []int  `json:"category_ids,omitempty"`
	SongLanguageIDs []int  `json:"song_language_ids,omitempty"`
}

// UpdateSongRequest partially updates a catalog song.
type UpdateSongRequest struct {
	Title           *string `json:"title,omitempty"`
	YouTube         *string `json:"youtube,omitempty"`
	Description     *string `json:"description,omitempty"`
	SongWriter      *string `json:"song_writer,omitempty"`
	StyleID         *int    `json:"style_id,omitempty"`
	Lyrics          *string `json:"lyrics,omitempty"`
	MusicNotes      *string `json:"music_notes,omitempty"`
	PopularRating   *int    `json:"popular_rating,omitempty"`
	CategoryIDs     []int   `json:"category_ids,omitempty"`
	SongLanguageIDs []int   `json:"song_language_ids,omitempty"`
}

// Songs lists catalog songs matching the query.
func (c *Client) Songs(ctx context.Context, query SongQuery) (models.Paginated[models.Song], error) {
	var resp models.Paginated[models.Song]
	err := c.do(ctx, http.MethodGet, "/songs?"+query.encode(), nil, &resp)
	return resp, err
}

// CreateSong creates a catalog song.
func (c *Client) CreateSong(ctx context.Context, req CreateSongRequest) (models.Song, error) {
	var song models.Song
	err := c.do(ctx, http.MethodPost, "/songs", req, &song)
	return song, err
}

// Song retrieves a catalog song by id.
func (c *Client) Song(ctx context.Context, id int) (models.Song, error) {
	var song models.Song
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/songs/%d", id), nil, &song)
	return song, err
}

// UpdateSong updates a catalog song.
func (c *Client) UpdateSong(ctx context.Context, id int, req UpdateSongRequest) (models.Song, error) {
	var song models.Song
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/songs/%d", id), req, &song)
	return song, err
}

// DeleteSong deletes a catalog song.
func (c *Client) DeleteSong(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/songs/%d", id), nil, nil)
}
