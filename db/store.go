package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the durable archive of finished annotations.
type Store interface {
	GetAnnotation(ctx context.Context, lang string, revID int64) (Annotation, error)
	UpsertAnnotation(ctx context.Context, arg UpsertAnnotationParams) (Annotation, error)
	DeleteAnnotation(ctx context.Context, lang string, revID int64) error
	Shutdown()
}

// DBTX is satisfied by both the pool and a transaction.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type SQLStore struct {
	db       DBTX
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		db:       connPool,
		connPool: connPool,
	}
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	if store.connPool != nil {
		store.connPool.Close()
	}
}
