package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	Migrate(ctx context.Context) error

	// ParseHistory model related methods.
	CreateParseHistory(ctx context.Context, create *ParseHistory) (*ParseHistory, error)
	ListParseHistories(ctx context.Context, find *FindParseHistory) ([]*ParseHistory, error)
	DeleteParseHistory(ctx context.Context, delete *DeleteParseHistory) error
}
