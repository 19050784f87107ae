// Package guard implements the route guards consulted before a navigation
// completes. The predicates read session state from the injected manager on
// every call; nothing is cached across navigations, since the session can be
// cleared at any time from another part of the application.
package guard

import (
	"context"

	"github.com/dmitrijs2005/retailhub/internal/client/session"
)

// Route names for the application's views.
const (
	RouteLogin         = "login"
	RouteSignup        = "signup"
	RouteDashboard     = "dashboard"
	RouteAdminApproval = "admin-approval"
)

// Navigator performs the redirect side effect of a failed guard. returnTo
// carries the originally attempted route when return-URL preservation is
// enabled, and is empty otherwise.
type Navigator interface {
	NavigateTo(route string, returnTo string)
}

// Options configures guard behavior.
type Options struct {
	// PreserveReturnURL makes login redirects carry the attempted
	// destination so the login view can return there afterwards. When
	// false the destination is discarded.
	PreserveReturnURL bool
}

// Guard holds the guard predicates. The zero value is not usable; construct
// with New.
type Guard struct {
	session *session.Manager
	nav     Navigator
	opts    Options
}

func New(s *session.Manager, nav Navigator, opts Options) *Guard {
	return &Guard{session: s, nav: nav, opts: opts}
}

func (g *Guard) loginReturnTo(target string) string {
	if g.opts.PreserveReturnURL {
		return target
	}
	return ""
}

// CanEnterProtected reports whether navigation to a protected view may
// proceed. An unauthenticated attempt redirects to the login view.
func (g *Guard) CanEnterProtected(ctx context.Context, target string) bool {
	if g.session.IsAuthenticated(ctx) {
		return true
	}
	g.nav.NavigateTo(RouteLogin, g.loginReturnTo(target))
	return false
}

// CanEnterAdmin reports whether navigation to an admin view may proceed.
// The failure destination depends on the reason: unauthenticated users go
// to login, authenticated non-admins go to the general dashboard.
func (g *Guard) CanEnterAdmin(ctx context.Context, target string) bool {
	if !g.session.IsAuthenticated(ctx) {
		g.nav.NavigateTo(RouteLogin, g.loginReturnTo(target))
		return false
	}
	if !g.session.IsAdmin(ctx) {
		g.nav.NavigateTo(RouteDashboard, "")
		return false
	}
	return true
}
