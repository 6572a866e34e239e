package router

import "testing"

// stubState is a fixed AuthState for guard tests.
type stubState struct {
	authenticated bool
	superAdmin    bool
}

func (s stubState) Authenticated() bool { return s.authenticated }
func (s stubState) IsSuperAdmin() bool  { return s.superAdmin }

func TestRoutes(t *testing.T) {
	t.Run("Lookup Finds Declared Routes", func(t *testing.T) {
		for _, r := range Routes() {
			got, err := Lookup(r.Name)
			if err != nil {
				t.Errorf("expected route %s found, got %v", r.Name, err)
			}
			if got.Title != r.Title {
				t.Errorf("expected title %q, got %q", r.Title, got.Title)
			}
		}
	})

	t.Run("Lookup Rejects Unknown Route", func(t *testing.T) {
		if _, err := Lookup("definitely-not-a-route"); err == nil {
			t.Error("expected error for unknown route")
		}
	})

	t.Run("No Route Requires Both Auth and Guest", func(t *testing.T) {
		for _, r := range Routes() {
			if r.RequiresAuth && r.RequiresGuest {
				t.Errorf("route %s requires both auth and guest", r.Name)
			}
		}
	})
}

func TestGuard(t *testing.T) {
	t.Run("Check", func(t *testing.T) {
		t.Run("Unauthenticated User Goes To Login", func(t *testing.T) {
			g := NewGuard(stubState{})

			for _, name := range []string{RouteDashboard, RouteSongs, RouteAdmins} {
				route, err := Lookup(name)
				if err != nil {
					t.Fatal(err)
				}
				if got := g.Check(route); got != RedirectLogin {
					t.Errorf("expected RedirectLogin for %s, got %v", name, got)
				}
			}
		})

		t.Run("Auth Check Dominates Super Admin Check", func(t *testing.T) {
			// An anonymous user hitting the admins view must land on login,
			// not the dashboard, even though the route also requires the
			// super-admin role.
			g := NewGuard(stubState{authenticated: false, superAdmin: false})

			route, err := Lookup(RouteAdmins)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Check(route); got != RedirectLogin {
				t.Errorf("expected RedirectLogin, got %v", got)
			}
		})

		t.Run("Authenticated User Cannot Revisit Login", func(t *testing.T) {
			g := NewGuard(stubState{authenticated: true})

			route, err := Lookup(RouteLogin)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Check(route); got != RedirectDashboard {
				t.Errorf("expected RedirectDashboard, got %v", got)
			}
		})

		t.Run("Non Super Admin Bounced To Dashboard", func(t *testing.T) {
			g := NewGuard(stubState{authenticated: true, superAdmin: false})

			route, err := Lookup(RouteAdmins)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Check(route); got != RedirectDashboard {
				t.Errorf("expected RedirectDashboard, got %v", got)
			}
		})

		t.Run("Super Admin Admitted Everywhere Authenticated", func(t *testing.T) {
			g := NewGuard(stubState{authenticated: true, superAdmin: true})

			for _, r := range Routes() {
				if r.RequiresGuest {
					continue
				}
				if got := g.Check(r); got != Admit {
					t.Errorf("expected Admit for %s, got %v", r.Name, got)
				}
			}
		})

		t.Run("Guest Admitted To Login", func(t *testing.T) {
			g := NewGuard(stubState{})

			route, err := Lookup(RouteLogin)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Check(route); got != Admit {
				t.Errorf("expected Admit, got %v", got)
			}
		})
	})

	t.Run("Resolve", func(t *testing.T) {
		t.Run("Returns Target When Admitted", func(t *testing.T) {
			g := NewGuard(stubState{authenticated: true})

			route, err := g.Resolve(RouteSongs)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if route.Name != RouteSongs {
				t.Errorf("expected songs route, got %s", route.Name)
			}
		})

		t.Run("Returns Login On Redirect", func(t *testing.T) {
			g := NewGuard(stubState{})

			route, err := g.Resolve(RouteSuggestions)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if route.Name != RouteLogin {
				t.Errorf("expected login route, got %s", route.Name)
			}
		})

		t.Run("Returns Dashboard For Unauthorized", func(t *testing.T) {
			g := NewGuard(stubState{authenticated: true, superAdmin: false})

			route, err := g.Resolve(RouteAdmins)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if route.Name != RouteDashboard {
				t.Errorf("expected dashboard route, got %s", route.Name)
			}
		})

		t.Run("Propagates Unknown Route", func(t *testing.T) {
			g := NewGuard(stubState{})

			if _, err := g.Resolve("nope"); err == nil {
				t.Error("expected error for unknown route")
			}
		})
	})
}
