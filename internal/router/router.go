// Package router declares the client's navigable views and the guard that
// admits or redirects every transition between them.
//
// The guard is a UX convenience, not a security boundary: it reads the
// session's cached state synchronously, makes no network call, and trusts
// that the server will reject any request a stale session should not make.
package router

import "fmt"

// Route names, one per view.
const (
	RouteLogin       = "login"
	RouteDashboard   = "dashboard"
	RouteProfile     = "profile"
	RouteSongs       = "songs"
	RouteSongForm    = "song-form"
	RouteStyles      = "styles"
	RouteCategories  = "categories"
	RouteLanguages   = "languages"
	RouteSuggestions = "suggestions"
	RouteAdmins      = "admins"
)

// Route declares a navigable view and its access requirements.
// Requirements are static, declared once at startup, never mutated.
type Route struct {
	Name               string
	Title              string
	RequiresAuth       bool
	RequiresGuest      bool
	RequiresSuperAdmin bool
}

// routes is the static route table. A route never sets both RequiresGuest and
// RequiresAuth.
var routes = []Route{
	{Name: RouteLogin, Title: "Login", RequiresGuest: true},
	{Name: RouteDashboard, Title: "Dashboard", RequiresAuth: true},
	{Name: RouteProfile, Title: "Profile", RequiresAuth: true},
	{Name: RouteSongs, Title: "Songs", RequiresAuth: true},
	{Name: RouteSongForm, Title: "Song Form", RequiresAuth: true},
	{Name: RouteStyles, Title: "Styles", RequiresAuth: true},
	{Name: RouteCategories, Title: "Categories", RequiresAuth: true},
	{Name: RouteLanguages, Title: "Song Languages", RequiresAuth: true},
	{Name: RouteSuggestions, Title: "Suggested Songs", RequiresAuth: true},
	{Name: RouteAdmins, Title: "Admins", RequiresAuth: true, RequiresSuperAdmin: true},
}

// Routes returns the full route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds a route by name.
func Lookup(name string) (Route, error) {
	for _, r := range routes {
		if r.Name == name {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("unknown route: %s", name)
}

// AuthState is the slice of the session the guard reads. Reads are
// synchronous and side-effect free.
type AuthState interface {
	Authenticated() bool
	IsSuperAdmin() bool
}

// Decision is the guard's verdict for one navigation attempt.
type Decision int

const (
	// Admit lets the navigation proceed.
	Admit Decision = iota
	// RedirectLogin sends the user to the login view.
	RedirectLogin
	// RedirectDashboard sends the user to the default landing view.
	RedirectDashboard
)

// Guard evaluates route access requirements against session state.
type Guard struct {
	session AuthState
}

// NewGuard creates a Guard reading from the given session.
func NewGuard(session AuthState) *Guard {
	return &Guard{session: session}
}

// Check evaluates the access rules for a transition to the given route, in
// fixed order. The auth check dominates: an unauthenticated user is sent to
// login even when the route also requires super admin. An authenticated but
// unauthorized user is sent to the dashboard, not bounced to login. Exactly
// one decision is made per attempt.
func (g *Guard) Check(to Route) Decision {
	authenticated := g.session.Authenticated()

	if to.RequiresAuth && !authenticated {
		return RedirectLogin
	}
	if to.RequiresGuest && authenticated {
		return RedirectDashboard
	}
	if to.RequiresSuperAdmin && !g.session.IsSuperAdmin() {
		return RedirectDashboard
	}
	return Admit
}

// Resolve applies Check to the named route and returns the route actually
// navigated to.
func (g *Guard) Resolve(name string) (Route, error) {
	to, err := Lookup(name)
	if err != nil {
		return Route{}, err
	}

	switch g.Check(to) {
	case RedirectLogin:
		return Lookup(RouteLogin)
	case RedirectDashboard:
		return Lookup(RouteDashboard)
	default:
		return to, nil
	}
}
