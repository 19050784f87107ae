package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/retailhub/internal/client/guard"
	"github.com/dmitrijs2005/retailhub/internal/client/models"
)

// Admin runs the admin approval screen: a pending-accounts table with its
// own small command loop (approve/reject/refresh). Entry is decided by the
// admin route guard; non-admins are redirected to the dashboard, anonymous
// users to login.
func (a *App) Admin(ctx context.Context) error {
	if !a.guard.CanEnterAdmin(ctx, guard.RouteAdminApproval) {
		return nil
	}
	a.route = guard.RouteAdminApproval

	a.showPendingUsers(ctx)

	for {
		line, err := GetSimpleText(a.reader, "admin (approve <id> | reject <id> | list | all | back)", a.out)
		if err != nil {
			return nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "approve":
			a.approvePendingUser(ctx, parts[1:])
		case "reject":
			a.rejectPendingUser(ctx, parts[1:])
		case "list":
			a.showPendingUsers(ctx)
		case "all":
			a.showAllUsers(ctx)
		case "back":
			a.NavigateTo(guard.RouteDashboard, "")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) showPendingUsers(ctx context.Context) {
	users, err := a.auth.GetPendingUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load pending users")
		return
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No accounts pending approval")
		return
	}

	fmt.Fprintln(a.out, "Pending accounts:")
	for _, u := range users {
		fmt.Fprintf(a.out, "  #%d  %s <%s>  signed up %s\n", u.ID, u.Name, u.Email, formatCreatedAt(u.CreatedAt))
	}
}

func (a *App) showAllUsers(ctx context.Context) {
	users, err := a.auth.GetAllUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load users")
		return
	}

	fmt.Fprintln(a.out, "All accounts:")
	for _, u := range users {
		fmt.Fprintf(a.out, "  #%d  %s <%s>  %s / approved=%s\n", u.ID, u.Name, u.Email, u.Role, u.IsApproved)
	}
}

func (a *App) findPendingUser(ctx context.Context, args []string) *models.User {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: approve <id> | reject <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return nil
	}

	users, err := a.auth.GetPendingUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load pending users")
		return nil
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	fmt.Fprintf(a.out, "No pending account with id %d\n", id)
	return nil
}

func (a *App) approvePendingUser(ctx context.Context, args []string) {
	u := a.findPendingUser(ctx, args)
	if u == nil {
		return
	}

	prompt := fmt.Sprintf("Approve user %q (%s)?", u.Name, u.Email)
	if !GetConfirmation(a.reader, prompt, a.out) {
		return
	}

	if _, err := a.auth.ApproveUser(ctx, u.ID); err != nil {
		fmt.Fprintln(a.out, "Failed to approve user")
		return
	}

	fmt.Fprintf(a.out, "User %q approved successfully!\n", u.Name)
	a.showPendingUsers(ctx)
}

func (a *App) rejectPendingUser(ctx context.Context, args []string) {
	u := a.findPendingUser(ctx, args)
	if u == nil {
		return
	}

	prompt := fmt.Sprintf("Delete user %q (%s)? This action cannot be undone.", u.Name, u.Email)
	if !GetConfirmation(a.reader, prompt, a.out) {
		return
	}

	if err := a.auth.DeleteUser(ctx, u.ID); err != nil {
		fmt.Fprintln(a.out, "Failed to delete user")
		return
	}

	fmt.Fprintf(a.out, "User %q deleted successfully!\n", u.Name)
	a.showPendingUsers(ctx)
}

// formatCreatedAt renders a createdAt timestamp for the pending table.
// Records predating the createdAt field show as N/A.
func formatCreatedAt(s string) string {
	if s == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "N/A"
	}
	return t.Format("Jan 2, 2006 15:04")
}
