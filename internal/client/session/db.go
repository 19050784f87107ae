package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/retailhub/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// InitDatabase opens the local session database and applies embedded
// migrations. The session store assumes a single client process writing
// to it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run session db migrations: %w", err)
	}

	return db, nil
}
