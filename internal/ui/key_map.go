package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	back        key.Binding
	songs       key.Binding
	styles      key.Binding
	categories  key.Binding
	languages   key.Binding
	suggestions key.Binding
	admins      key.Binding
	profile     key.Binding
	approve     key.Binding
	cancel      key.Binding
	open        key.Binding
	refresh     key.Binding
	logout      key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dashboard")),
		songs:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "songs")),
		styles:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "styles")),
		categories:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
		languages:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "languages")),
		suggestions: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "suggestions")),
		admins:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "admins")),
		profile:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		approve:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "approve")),
		cancel:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
		open:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open youtube")),
		refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		logout:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.songs, k.styles, k.categories, k.languages},
		{k.suggestions, k.admins, k.profile},
		{k.approve, k.cancel, k.open, k.refresh},
		{k.logout, k.quit},
	}
}
