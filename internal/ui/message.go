package ui

import (
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
)

// SessionInvalidatedMsg is delivered into the program when the API client
// reports a 401 on any request. The application wires the client's
// OnUnauthorized callback to Program.Send.
type SessionInvalidatedMsg struct{}

type loggedInMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type songsLoadedMsg struct {
	page models.Paginated[models.Song]
	err  error
}

type stylesLoadedMsg struct {
	styles []models.Style
	err    error
}

type categoriesLoadedMsg struct {
	page models.Paginated[models.Category]
	err  error
}

type languagesLoadedMsg struct {
	languages []models.SongLanguage
	err       error
}

type suggestionsLoadedMsg struct {
	page models.Paginated[models.SuggestSong]
	err  error
}

type adminsLoadedMsg struct {
	page models.Paginated[models.Admin]
	err  error
}

type suggestionReviewedMsg struct {
	message string
	err     error
}
