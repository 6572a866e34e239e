package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// CreateStyleRequest creates a musical style.
type CreateStyleRequest struct {
	Name string `json:"name"`
}

// UpdateStyleRequest partially updates a musical style.
type UpdateStyleRequest struct {
	Name *string `json:"name,omitempty"`
}

// Styles lists all musical styles.
func (c *Client) Styles(ctx context.Context) ([]models.Style, error) {
	var styles []models.Style
	err := c.do(ctx, http.MethodGet, "/styles", nil, &styles)
	return styles, err
}

// CreateStyle creates a musical style.
func (c *Client) CreateStyle(ctx context.Context, req CreateStyleRequest) (models.Style, error) {
	var style models.Style
	err := c.do(ctx, http.MethodPost, "/styles", req, &style)
	return style, err
}

// Style retrieves a musical style by id.
func (c *Client) Style(ctx context.Context, id int) (models.Style, error) {
	var style models.Style
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/styles/%d", id), nil, &style)
	return style, err
}

// UpdateStyle updates a musical style.
func (c *Client) UpdateStyle(ctx context.Context, id int, req UpdateStyleRequest) (models.Style, error) {
	var style models.Style
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/styles/%d", id), req, &style)
	return style, err
}

// DeleteStyle deletes a musical style.
func (c *Client) DeleteStyle(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/styles/%d", id), nil, nil)
}

// CreateCategoryRequest creates a category. The slug is server-assigned.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortNo      int    `json:"sort_no"`
}

// UpdateCategoryRequest partially updates a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SortNo      *int    `json:"sort_no,omitempty"`
}

// Categories lists categories with pagination and optional search.
func (c *Client) Categories(ctx context.Context, page int, search string) (models.Paginated[models.Category], error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if search != "" {
		params.Set("search", search)
	}

	var resp models.Paginated[models.Category]
	err := c.do(ctx, http.MethodGet, "/categories?"+params.Encode(), nil, &resp)
	return resp, err
}

// AllCategories fetches every category in one page, for filter pickers.
func (c *Client) AllCategories(ctx context.Context) ([]models.Category, error) {
	var resp models.Paginated[models.Category]
	if err := c.do(ctx, http.MethodGet, "/categories?per_page=1000", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, http.MethodPost, "/categories", req, &category)
	return category, err
}

// Category retrieves a category by id.
func (c *Client) Category(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &category)
	return category, err
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, req UpdateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), req, &category)
	return category, err
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

// CreateSongLanguageRequest creates a song language.
type CreateSongLanguageRequest struct {
	Name string `json:"name"`
}

// UpdateSongLanguageRequest partially updates a song language.
type UpdateSongLanguageRequest struct {
	Name *string `json:"name,omitempty"`
}

// SongLanguages lists all song languages.
func (c *Client) SongLanguages(ctx context.Context) ([]models.SongLanguage, error) {
	var languages []models.SongLanguage
	err := c.do(ctx, http.MethodGet, "/song-languages", nil, &languages)
	return languages, err
}

// CreateSongLanguage creates a song language.
func (c *Client) CreateSongLanguage(ctx context.Context, req CreateSongLanguageRequest) (models.SongLanguage, error) {
	var language models.SongLanguage
	err := c.do(ctx, http.MethodPost, "/song-languages", req, &language)
	return language, err
}

// SongLanguage retrieves a song language by id.
func (c *Client) SongLanguage(ctx context.Context, id int) (models.SongLanguage, error) {
	var language models.SongLanguage
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/song-languages/%d", id), nil, &language)
	return language, err
}

// UpdateSongLanguage updates a song language.
func (c *Client) UpdateSongLanguage(ctx context.Context, id int, req UpdateSongLanguageRequest) (models.SongLanguage, error) {
	var language models.SongLanguage
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/song-languages/%d", id), req, &language)
	return language, err
}

// DeleteSongLanguage deletes a song language.
func (c *Client) DeleteSongLanguage(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/song-languages/%d", id), nil, nil)
}
