package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/session"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
)

// Model represents the TUI application state. The current route decides which
// view renders; all transitions pass through the navigation guard.
type Model struct {
	ctx     context.Context
	session *session.Session
	guard   *router.Guard
	client  *api.Client
	logger  *log.Logger

	route  router.Route
	width  int
	height int
	status string
	err    error

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loggingIn     bool

	songList       list.Model
	styleList      list.Model
	categoryList   list.Model
	languageList   list.Model
	suggestionList list.Model
	adminList      list.Model
	songs          []models.Song
	suggestions    []models.SuggestSong

	help help.Model
	keys keyMap
}

// NewModel creates the TUI model. The initial route is whatever the guard
// admits for the dashboard: login when unauthenticated.
func NewModel(ctx context.Context, sess *session.Session, guard *router.Guard, client *api.Client, logger *log.Logger) *Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	m := &Model{
		ctx:           ctx,
		session:       sess,
		guard:         guard,
		client:        client,
		logger:        logger,
		emailInput:    email,
		passwordInput: password,
		help:          help.New(),
		keys:          newKeyMap(),
	}

	route, err := guard.Resolve(router.RouteDashboard)
	if err != nil {
		route, _ = router.Lookup(router.RouteLogin)
	}
	m.route = route

	return m
}

// Init loads the data for the initial route.
func (m *Model) Init() tea.Cmd {
	return m.loadRoute(m.route)
}

// navigate resolves the named route through the guard and starts loading the
// admitted view's data.
func (m *Model) navigate(name string) tea.Cmd {
	route, err := m.guard.Resolve(name)
	if err != nil {
		m.err = err
		return nil
	}
	m.route = route
	m.err = nil
	return m.loadRoute(route)
}

// loadRoute returns the fetch command for a route's data, if it has any.
func (m *Model) loadRoute(route router.Route) tea.Cmd {
	switch route.Name {
	case router.RouteSongs:
		return m.fetchSongs()
	case router.RouteStyles:
		return m.fetchStyles()
	case router.RouteCategories:
		return m.fetchCategories()
	case router.RouteLanguages:
		return m.fetchLanguages()
	case router.RouteSuggestions:
		return m.fetchSuggestions()
	case router.RouteAdmins:
		return m.fetchAdmins()
	default:
		return nil
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.songList, &m.styleList, &m.categoryList, &m.languageList, &m.suggestionList, &m.adminList} {
			l.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case SessionInvalidatedMsg:
		m.session.CheckAuth()
		m.status = ""
		m.err = fmt.Errorf("session expired, please log in again")
		return m, m.navigate(router.RouteLogin)

	case tea.KeyMsg:
		if m.route.Name == router.RouteLogin {
			return m.handleLoginKeys(msg)
		}
		return m.handleViewKeys(msg)

	case loggedInMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.passwordInput.SetValue("")
		m.status = fmt.Sprintf("Welcome, %s", m.session.Profile().Name)
		return m, m.navigate(router.RouteDashboard)

	case loggedOutMsg:
		if msg.err != nil {
			// Local state is already cleared; the remote failure is informational.
			m.status = fmt.Sprintf("logged out locally (%v)", msg.err)
		} else {
			m.status = "logged out"
		}
		return m, m.navigate(router.RouteLogin)

	case songsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.songs = msg.page.Data
		items := make([]list.Item, len(msg.page.Data))
		for i, song := range msg.page.Data {
			items[i] = songItem{song: song}
		}
		m.songList = m.newList(items, fmt.Sprintf("Songs (%d total)", msg.page.Total))
		return m, nil

	case stylesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.styles))
		for i, style := range msg.styles {
			items[i] = catalogItem{id: style.ID, name: style.Name}
		}
		m.styleList = m.newList(items, "Styles")
		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.page.Data))
		for i, category := range msg.page.Data {
			items[i] = catalogItem{id: category.ID, name: category.Name, desc: category.Description}
		}
		m.categoryList = m.newList(items, fmt.Sprintf("Categories (%d total)", msg.page.Total))
		return m, nil

	case languagesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.languages))
		for i, language := range msg.languages {
			items[i] = catalogItem{id: language.ID, name: language.Name}
		}
		m.languageList = m.newList(items, "Song Languages")
		return m, nil

	case suggestionsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.suggestions = msg.page.Data
		items := make([]list.Item, len(msg.page.Data))
		for i, suggestion := range msg.page.Data {
			items[i] = suggestionItem{suggestion: suggestion}
		}
		m.suggestionList = m.newList(items, fmt.Sprintf("Suggested Songs (%d total)", msg.page.Total))
		return m, nil

	case adminsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.page.Data))
		for i, admin := range msg.page.Data {
			items[i] = adminItem{admin: admin}
		}
		m.adminList = m.newList(items, fmt.Sprintf("Admins (%d total)", msg.page.Total))
		return m, nil

	case suggestionReviewedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = msg.message
		return m, m.fetchSuggestions()
	}

	return m.updateActiveList(msg)
}

func (m *Model) newList(items []list.Item, title string) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	l.Title = title
	return l
}

// View renders the UI based on the current route.
func (m *Model) View() string {
	switch m.route.Name {
	case router.RouteLogin:
		return m.renderLogin()
	case router.RouteDashboard:
		return m.renderDashboard()
	case router.RouteProfile:
		return m.renderProfile()
	case router.RouteSongs:
		return m.renderList(m.songList, []key.Binding{m.keys.open, m.keys.refresh, m.keys.back, m.keys.quit})
	case router.RouteStyles:
		return m.renderList(m.styleList, []key.Binding{m.keys.refresh, m.keys.back, m.keys.quit})
	case router.RouteCategories:
		return m.renderList(m.categoryList, []key.Binding{m.keys.refresh, m.keys.back, m.keys.quit})
	case router.RouteLanguages:
		return m.renderList(m.languageList, []key.Binding{m.keys.refresh, m.keys.back, m.keys.quit})
	case router.RouteSuggestions:
		return m.renderList(m.suggestionList, []key.Binding{m.keys.approve, m.keys.cancel, m.keys.refresh, m.keys.back, m.keys.quit})
	case router.RouteAdmins:
		return m.renderList(m.adminList, []key.Binding{m.keys.refresh, m.keys.back, m.keys.quit})
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = (m.loginFocus + 1) % 2
		if m.loginFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.emailInput.Blur()
			m.passwordInput.Focus()
			return m, nil
		}
		if m.loggingIn {
			return m, nil
		}
		m.loggingIn = true
		m.err = nil
		return m, m.login(m.emailInput.Value(), m.passwordInput.Value())
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.back):
		return m, m.navigate(router.RouteDashboard)
	case key.Matches(msg, keys.songs):
		return m, m.navigate(router.RouteSongs)
	case key.Matches(msg, keys.styles):
		return m, m.navigate(router.RouteStyles)
	case key.Matches(msg, keys.categories):
		return m, m.navigate(router.RouteCategories)
	case key.Matches(msg, keys.languages):
		return m, m.navigate(router.RouteLanguages)
	case key.Matches(msg, keys.suggestions):
		return m, m.navigate(router.RouteSuggestions)
	case key.Matches(msg, keys.admins):
		return m, m.navigate(router.RouteAdmins)
	case key.Matches(msg, keys.profile):
		return m, m.navigate(router.RouteProfile)
	case key.Matches(msg, keys.refresh):
		return m, m.loadRoute(m.route)
	case key.Matches(msg, keys.logout):
		return m, m.logout()
	case key.Matches(msg, keys.open):
		if m.route.Name == router.RouteSongs {
			return m, m.openSelectedSong()
		}
	case key.Matches(msg, keys.approve):
		if m.route.Name == router.RouteSuggestions {
			return m, m.reviewSelectedSuggestion(true)
		}
	case key.Matches(msg, keys.cancel):
		if m.route.Name == router.RouteSuggestions {
			return m, m.reviewSelectedSuggestion(false)
		}
	}

	return m.updateActiveList(msg)
}

func (m *Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.route.Name {
	case router.RouteSongs:
		m.songList, cmd = m.songList.Update(msg)
	case router.RouteStyles:
		m.styleList, cmd = m.styleList.Update(msg)
	case router.RouteCategories:
		m.categoryList, cmd = m.categoryList.Update(msg)
	case router.RouteLanguages:
		m.languageList, cmd = m.languageList.Update(msg)
	case router.RouteSuggestions:
		m.suggestionList, cmd = m.suggestionList.Update(msg)
	case router.RouteAdmins:
		m.adminList, cmd = m.adminList.Update(msg)
	}
	return m, cmd
}

func (m *Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.Login(m.ctx, api.Credentials{Email: email, Password: password})
		return loggedInMsg{err: err}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.session.Logout(m.ctx)}
	}
}

func (m *Model) fetchSongs() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.Songs(m.ctx, api.SongQuery{})
		return songsLoadedMsg{page: page, err: err}
	}
}

func (m *Model) fetchStyles() tea.Cmd {
	return func() tea.Msg {
		styles, err := m.client.Styles(m.ctx)
		return stylesLoadedMsg{styles: styles, err: err}
	}
}

func (m *Model) fetchCategories() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.Categories(m.ctx, 1, "")
		return categoriesLoadedMsg{page: page, err: err}
	}
}

func (m *Model) fetchLanguages() tea.Cmd {
	return func() tea.Msg {
		languages, err := m.client.SongLanguages(m.ctx)
		return languagesLoadedMsg{languages: languages, err: err}
	}
}

func (m *Model) fetchSuggestions() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.SuggestSongs(m.ctx, api.SuggestSongQuery{})
		return suggestionsLoadedMsg{page: page, err: err}
	}
}

func (m *Model) fetchAdmins() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.Admins(m.ctx, 1, "")
		return adminsLoadedMsg{page: page, err: err}
	}
}

func (m *Model) openSelectedSong() tea.Cmd {
	selected := m.songList.SelectedItem()
	item, ok := selected.(songItem)
	if !ok || item.song.YouTube == "" {
		m.status = "no YouTube link for this song"
		return nil
	}
	return func() tea.Msg {
		if err := shared.OpenBrowser(item.song.YouTube); err != nil {
			m.logger.Warn("failed to open browser", "error", err)
		}
		return nil
	}
}

func (m *Model) reviewSelectedSuggestion(approve bool) tea.Cmd {
	selected := m.suggestionList.SelectedItem()
	item, ok := selected.(suggestionItem)
	if !ok {
		return nil
	}
	id := item.suggestion.ID
	return func() tea.Msg {
		if approve {
			resp, err := m.client.ApproveSuggestSong(m.ctx, id)
			if err != nil {
				return suggestionReviewedMsg{err: err}
			}
			return suggestionReviewedMsg{message: fmt.Sprintf("approved: created song '%s'", resp.Song.Title)}
		}
		resp, err := m.client.CancelSuggestSong(m.ctx, id)
		if err != nil {
			return suggestionReviewedMsg{err: err}
		}
		message := resp.Message
		if message == "" {
			message = "suggestion cancelled"
		}
		return suggestionReviewedMsg{message: message}
	}
}

func (m *Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Calvary Admin · Login"))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")

	if m.loggingIn {
		b.WriteString(styles.warn.Render("logging in..."))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(styles.err.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(styles.ok.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render("tab: switch field • enter: submit • ctrl+c: quit"))
	return b.String()
}

func (m *Model) renderDashboard() string {
	profile := m.session.Profile()

	var b strings.Builder
	b.WriteString(styles.title.Render("Calvary Admin · Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Signed in as %s <%s>\n", profile.Name, profile.Email))

	if m.session.IsSuperAdmin() {
		b.WriteString(styles.ok.Render("super admin"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("s: songs  t: styles  c: categories  g: languages\n")
	b.WriteString("u: suggestions  p: profile")
	if m.session.IsSuperAdmin() {
		b.WriteString("  a: admins")
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.err.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(styles.ok.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render("ctrl+l: logout • q: quit"))
	return b.String()
}

func (m *Model) renderProfile() string {
	profile := m.session.Profile()

	var b strings.Builder
	b.WriteString(styles.title.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Name:  %s\n", profile.Name))
	b.WriteString(fmt.Sprintf("Email: %s\n", profile.Email))

	b.WriteString("Roles: ")
	if len(profile.Roles) == 0 {
		b.WriteString("-")
	}
	for i, role := range profile.Roles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(role.Name)
	}
	b.WriteString("\n\n")

	b.WriteString(styles.help.Render("esc: dashboard • q: quit"))
	return b.String()
}

func (m *Model) renderList(l list.Model, helpKeys []key.Binding) string {
	var b strings.Builder
	b.WriteString(l.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styles.err.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(styles.ok.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}
