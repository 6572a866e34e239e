package models

// Role is a named capability grouping assigned to an admin.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Admin represents an administrator account as returned by the API.
type Admin struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Roles     []Role `json:"roles,omitempty"`
}

// HasRole reports whether the admin holds a role with the given name.
func (a Admin) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasRoleID reports whether the admin holds a role with the given id.
func (a Admin) HasRoleID(id int) bool {
	for _, r := range a.Roles {
		if r.ID == id {
			return true
		}
	}
	return false
}

// IsZero reports whether the admin is the empty default (no authenticated profile).
func (a Admin) IsZero() bool {
	return a.ID == 0 && a.Email == ""
}

// Style is a musical style a song may reference.
type Style struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Category groups songs thematically; sort_no orders categories in listings.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	SortNo      int    `json:"sort_no"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// SongLanguage is a language a song's lyrics are available in.
type SongLanguage struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Song is a catalog entry. StyleID is optional; Categories and SongLanguages
// are populated by the server when the relation is loaded.
type Song struct {
	ID            int            `json:"id"`
	AdminID       int            `json:"admin_id,omitempty"`
	StyleID       *int           `json:"style_id"`
	Code          int            `json:"code"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	YouTube       string         `json:"youtube,omitempty"`
	Description   string         `json:"description,omitempty"`
	SongWriter    string         `json:"song_writer,omitempty"`
	Lyrics        string         `json:"lyrics,omitempty"`
	MusicNotes    string         `json:"music_notes,omitempty"`
	PopularRating int            `json:"popular_rating,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	UpdatedAt     string         `json:"updated_at,omitempty"`
	Style         *Style         `json:"style,omitempty"`
	Categories    []Category     `json:"categories,omitempty"`
	SongLanguages []SongLanguage `json:"song_languages,omitempty"`
}

// Suggestion review states.
const (
	SuggestionCancelled = 0
	SuggestionPending   = 1
	SuggestionApproved  = 2
)

// SuggestSong is a publicly submitted song awaiting review.
type SuggestSong struct {
	ID            int        `json:"id"`
	Code          int        `json:"code"`
	Title         string     `json:"title"`
	YouTube       string     `json:"youtube,omitempty"`
	Description   string     `json:"description,omitempty"`
	SongWriter    string     `json:"song_writer,omitempty"`
	StyleID       *int       `json:"style_id"`
	Key           string     `json:"key,omitempty"`
	Lyrics        string     `json:"lyrics,omitempty"`
	MusicNotes    string     `json:"music_notes,omitempty"`
	PopularRating int        `json:"popular_rating,omitempty"`
	Email         string     `json:"email,omitempty"`
	Status        int        `json:"status"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
	Style         *Style     `json:"style,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}

// StatusLabel renders the suggestion status enum for display.
func (s SuggestSong) StatusLabel() string {
	switch s.Status {
	case SuggestionCancelled:
		return "cancelled"
	case SuggestionPending:
		return "pending"
	case SuggestionApproved:
		return "approved"
	default:
		return "unknown"
	}
}

// Paginated is the server's page envelope for list endpoints.
type Paginated[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}
