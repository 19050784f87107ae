package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/retailhub/internal/client/guard"
	"github.com/dmitrijs2005/retailhub/internal/client/models"
	"github.com/dmitrijs2005/retailhub/internal/client/services"
)

// Signup runs the signup screen. New accounts always start as RETAILER
// with approval pending; the admin has to approve them before the first
// login succeeds.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if string(password) != string(confirm) {
		fmt.Fprintln(a.out, "Passwords do not match")
		return nil
	}

	_, err = a.auth.Signup(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		if services.IsDuplicateEmail(err) {
			fmt.Fprintln(a.out, "Email already exists")
		} else {
			fmt.Fprintln(a.out, "Signup failed. Please try again.")
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully! Please wait for admin approval before logging in.")
	a.NavigateTo(guard.RouteLogin, "")
	return nil
}
