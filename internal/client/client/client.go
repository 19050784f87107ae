// Package client implements the HTTP client for the remote /users resource.
// Filtering is delegated to the resource's query capability; the package
// performs no business decisions beyond translating transport outcomes into
// sentinel errors.
package client

import (
	"context"

	"github.com/dmitrijs2005/retailhub/internal/client/models"
)

type Client interface {
	// FindByCredentials queries users filtered by exact email and password.
	FindByCredentials(ctx context.Context, email, password string) ([]models.User, error)

	// FindByEmail queries users filtered by email only.
	FindByEmail(ctx context.Context, email string) ([]models.User, error)

	// ListAll returns the full user collection.
	ListAll(ctx context.Context) ([]models.User, error)

	// ListPending returns users with isApproved=NO.
	ListPending(ctx context.Context) ([]models.User, error)

	// Create adds a new user record and returns it with its assigned id.
	Create(ctx context.Context, user models.User) (*models.User, error)

	// Approve issues a partial update setting isApproved=YES.
	Approve(ctx context.Context, id int) (*models.User, error)

	// Delete removes a user record.
	Delete(ctx context.Context, id int) error
}
