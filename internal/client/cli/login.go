package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/retailhub/internal/client/guard"
)

// Login runs the login screen: prompts for credentials, renders the outcome
// message, and on success navigates to the dashboard (or to the preserved
// destination when a guard redirect carried one).
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	res := a.auth.Login(ctx, email, string(password))
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Name)

	dest := a.returnTo
	a.returnTo = ""
	if dest == "" {
		dest = guard.RouteDashboard
	}
	a.NavigateTo(dest, "")
	return nil
}

// Logout asks for confirmation, clears the session and returns to the
// login screen.
func (a *App) Logout(ctx context.Context) error {
	if !GetConfirmation(a.reader, "Are you sure you want to logout?", a.out) {
		return nil
	}

	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed")
		return err
	}

	a.NavigateTo(guard.RouteLogin, "")
	return nil
}
