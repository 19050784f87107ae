// Package storage provides the durable client-side key/value store backing
// the session. Values are opaque byte strings addressed by stable keys.
package storage

import (
	"context"

	"github.com/dmitrijs2005/retailhub/internal/dbx"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// WithTx returns a repository bound to the given transactional handle.
	WithTx(tx dbx.DBTX) Repository
}
