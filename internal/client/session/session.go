// Package session manages the persisted authentication state of the client:
// a serialized current-user record and an opaque bearer token, held in
// durable local storage under two stable keys.
//
// The token and the user record are written and removed together; normal
// login/logout flows never leave one present without the other. Corrupted
// stored data is treated as "no session", never as authenticated.
package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dmitrijs2005/retailhub/internal/client/models"
	"github.com/dmitrijs2005/retailhub/internal/client/repositories/storage"
	"github.com/dmitrijs2005/retailhub/internal/common"
	"github.com/dmitrijs2005/retailhub/internal/dbx"
)

// Manager owns all reads and writes of the persisted session. Components
// that need session state (route guards, the request envelope, views)
// receive a *Manager instead of touching storage directly.
type Manager struct {
	db   *sql.DB
	repo storage.Repository
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db, repo: storage.NewSQLiteStorageRepository(db)}
}

// Save persists the user record (password stripped) and the token, in a
// single transaction so the two keys cannot end up mismatched.
func (m *Manager) Save(ctx context.Context, user models.User, token string) error {
	data, err := json.Marshal(user.WithoutPassword())
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo.WithTx(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, data)
	})
}

// Current returns the stored user record, or nil when no session exists.
// A record that fails to deserialize is treated as no session.
func (m *Manager) Current(ctx context.Context) *models.User {
	data, err := m.repo.Get(ctx, common.UserStorageKey)
	if err != nil || data == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	return &u
}

// Token returns the stored bearer token, or an empty string when absent.
func (m *Manager) Token(ctx context.Context) string {
	data, err := m.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return ""
	}
	return string(data)
}

// IsAuthenticated reports whether a token is present. Token well-formedness
// and expiry are not checked; presence alone is sufficient.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Token(ctx) != ""
}

// IsAdmin reports whether a session exists and its user has the ADMIN role.
func (m *Manager) IsAdmin(ctx context.Context) bool {
	u := m.Current(ctx)
	return u != nil && u.IsAdmin()
}

// Clear removes both stored keys. Idempotent.
func (m *Manager) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo.WithTx(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
}
