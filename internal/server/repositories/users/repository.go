package users

import (
	"context"

	"github.com/dmitrijs2005/retailhub/internal/server/models"
)

// Filter narrows a collection listing. Empty fields do not filter; all
// comparisons are exact, case-sensitive string equality, matching the
// query semantics the client was built against.
type Filter struct {
	Email      string
	Password   string
	IsApproved string
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Email      *string
	Password   *string
	Name       *string
	Role       *string
	IsApproved *string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int, p Patch) (*models.User, error)
	Delete(ctx context.Context, id int) error
}
