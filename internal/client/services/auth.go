// Package services contains application services for the RetailHub client.
// This file defines the authentication service: login with the approval
// gate, signup with the duplicate-email pre-check, the admin user
// operations, and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/retailhub/internal/client/client"
	"github.com/dmitrijs2005/retailhub/internal/client/models"
	"github.com/dmitrijs2005/retailhub/internal/client/session"
	"github.com/dmitrijs2005/retailhub/internal/common"
	"github.com/google/uuid"
)

// User-facing messages for the expected login outcomes. These are business
// results, not errors: they are rendered to the user and never logged as
// failures.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgPendingApproval    = "Account pending approval. Please wait for admin approval."
	MsgLoginFailed        = "Login failed. Please try again."
)

// AuthService orchestrates the remote /users resource and the local
// session store. It performs no authorization checks of its own: callers
// of the admin operations are expected to have been gated by the route
// guards already (the backend is an unprotected REST resource, a known
// trust boundary of this system).
type AuthService struct {
	client  client.Client
	session *session.Manager

	// test seam for createdAt stamping
	now func() time.Time
}

func NewAuthService(c client.Client, s *session.Manager) *AuthService {
	return &AuthService{client: c, session: s, now: time.Now}
}

// Login authenticates by querying the remote resource filtered by exact
// email and password match. The approval gate is applied locally: the
// resource cannot express "approved AND matches" in a single query.
//
// Transport failures are folded into a generic retry message; the raw
// error is never propagated to the caller.
func (a *AuthService) Login(ctx context.Context, email, password string) models.LoginResult {
	matches, err := a.client.FindByCredentials(ctx, email, password)
	if err != nil {
		return models.LoginResult{Success: false, Message: MsgLoginFailed}
	}

	if len(matches) == 0 {
		return models.LoginResult{Success: false, Message: MsgInvalidCredentials}
	}

	// Duplicates may exist in the resource; only the first match is used.
	user := matches[0]

	if !user.Approved() {
		return models.LoginResult{Success: false, Message: MsgPendingApproval}
	}

	user = user.WithoutPassword()
	token := fmt.Sprintf("token_%d_%s", user.ID, uuid.NewString())

	if err := a.session.Save(ctx, user, token); err != nil {
		return models.LoginResult{Success: false, Message: MsgLoginFailed}
	}

	return models.LoginResult{Success: true, User: &user}
}

// Signup creates a new account. The email must not already exist (exact,
// case-sensitive match); the check runs before any write, so a duplicate
// signup never issues a create call. Caller-supplied role and approval
// values are discarded: every new account is RETAILER / not approved.
func (a *AuthService) Signup(ctx context.Context, data models.User) (*models.User, error) {
	existing, err := a.client.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if len(existing) > 0 {
		return nil, common.ErrEmailExists
	}

	data.ID = 0
	data.Role = models.RoleRetailer
	data.IsApproved = models.ApprovalNo
	data.CreatedAt = a.now().UTC().Format(time.RFC3339)

	created, err := a.client.Create(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return created, nil
}

// GetPendingUsers returns accounts awaiting approval.
func (a *AuthService) GetPendingUsers(ctx context.Context) ([]models.User, error) {
	return a.client.ListPending(ctx)
}

// GetAllUsers returns the full user collection.
func (a *AuthService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return a.client.ListAll(ctx)
}

// ApproveUser marks the account approved via a partial update.
func (a *AuthService) ApproveUser(ctx context.Context, id int) (*models.User, error) {
	return a.client.Approve(ctx, id)
}

// DeleteUser removes the account (admin rejection).
func (a *AuthService) DeleteUser(ctx context.Context, id int) error {
	return a.client.Delete(ctx, id)
}

// Logout clears the persisted session.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

// Session exposes the session manager for guards and views.
func (a *AuthService) Session() *session.Manager {
	return a.session
}

// IsDuplicateEmail reports whether err is the duplicate-email outcome.
func IsDuplicateEmail(err error) bool {
	return errors.Is(err, common.ErrEmailExists)
}
