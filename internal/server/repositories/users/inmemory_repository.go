package users

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/retailhub/internal/common"
	"github.com/dmitrijs2005/retailhub/internal/server/models"
)

// InMemoryRepository is the store used for local development and tests.
// It mirrors the flat-file data service the client was originally
// developed against: no constraints beyond assigned ids, so duplicate
// emails are possible and the client's own pre-checks are what prevent
// them.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[int]models.User), nextID: 1}
}

func matches(u models.User, f Filter) bool {
	if f.Email != "" && u.Email != f.Email {
		return false
	}
	if f.Password != "" && u.Password != f.Password {
		return false
	}
	if f.IsApproved != "" && u.IsApproved != f.IsApproved {
		return false
	}
	return true
}

func (r *InMemoryRepository) List(ctx context.Context, f Filter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.User{}
	for _, u := range r.users {
		if matches(u, f) {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return user, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int, p Patch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsApproved != nil {
		u.IsApproved = *p.IsApproved
	}

	r.users[id] = u
	return &u, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
