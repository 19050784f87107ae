package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/retailhub/internal/client/guard"
)

// Dashboard runs the dashboard screen. Entry is decided by the protected
// route guard on every attempt; a rejected navigation has already been
// redirected to login by the time this returns.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guard.CanEnterProtected(ctx, guard.RouteDashboard) {
		return nil
	}
	a.route = guard.RouteDashboard

	u := a.session.Current(ctx)
	if u == nil {
		// token present but user record unreadable; not an error, the
		// screen just has nothing personal to show
		fmt.Fprintln(a.out, "Dashboard")
		return nil
	}

	fmt.Fprintln(a.out, "Dashboard")
	fmt.Fprintf(a.out, "  Name:  %s\n", u.Name)
	fmt.Fprintf(a.out, "  Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "  Role:  %s\n", u.Role)
	return nil
}
