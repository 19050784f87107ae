package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/retailhub/internal/dbx"
)

type SQLiteStorageRepository struct {
	db dbx.DBTX
}

func NewSQLiteStorageRepository(db dbx.DBTX) *SQLiteStorageRepository {
	return &SQLiteStorageRepository{db: db}
}

// Get returns the stored value for key, or nil when the key is absent.
func (r *SQLiteStorageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStorageRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStorageRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStorageRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session storage: %w", err)
	}
	return nil
}

func (r *SQLiteStorageRepository) WithTx(tx dbx.DBTX) Repository {
	return &SQLiteStorageRepository{db: tx}
}
