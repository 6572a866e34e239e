package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

func TestCatalog(t *testing.T) {
	t.Run("Categories Sends Page and Search", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("page") != "3" || q.Get("search") != "worship" {
				t.Errorf("unexpected query: %v", q)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data":         []models.Category{{ID: 1, Name: "Worship"}},
				"current_page": 3,
				"last_page":    3,
				"total":        31,
			})
		}))
		defer server.Close()

		c := NewClient(server.URL, nil, nil)
		page, err := c.Categories(context.Background(), 3, "worship")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if page.CurrentPage != 3 || len(page.Data) != 1 {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("AllCategories Unwraps Single Page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("per_page") != "1000" {
				t.Errorf("expected per_page=1000, got %v", r.URL.Query())
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data": []models.Category{{ID: 1, Name: "Worship"}, {ID: 2, Name: "Praise"}},
			})
		}))
		defer server.Close()

		c := NewClient(server.URL, nil, nil)
		categories, err := c.AllCategories(context.Background())

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(categories) != 2 || categories[1].Name != "Praise" {
			t.Errorf("unexpected categories: %+v", categories)
		}
	})

	t.Run("SongLanguages Decodes Bare Array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/song-languages" {
				t.Errorf("expected path /song-languages, got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode([]models.SongLanguage{{ID: 1, Name: "English"}})
		}))
		defer server.Close()

		c := NewClient(server.URL, nil, nil)
		languages, err := c.SongLanguages(context.Background())

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(languages) != 1 || languages[0].Name != "English" {
			t.Errorf("unexpected languages: %+v", languages)
		}
	})
}
