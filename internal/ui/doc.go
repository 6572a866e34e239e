// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// Each view of the admin panel maps to a route rendered by the single
// [Model]: login, dashboard, profile, and list views for songs, styles,
// categories, song languages, suggested songs and admins.
//
// Every view transition goes through the navigation guard first: the model
// never switches to a route the guard would not admit, so an unauthenticated
// user always lands on the login form and a non-super-admin never sees the
// admins view. When any fetch comes back 401 the API client's invalidation
// callback delivers a [SessionInvalidatedMsg] into the program; the model
// reconciles the session via CheckAuth and falls back to login.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// single-letter route switches and contextual help via charmbracelet/bubbles/help.
package ui
