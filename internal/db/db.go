package db

import (
	"context"
	"time"
)

// Store is the catalog driver facade. Each driver is bound to one product
// collection (index, table or in-memory set) at construction.
type Store interface {
	Pinger
	Catalog
	Writer
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Catalog provides the read operations the core depends on.
type Catalog interface {
	// FindByID returns the stored fields of one product or ErrKeyNotFound.
	FindByID(ctx context.Context, id string) (map[string]string, error)
	// Search evaluates a predicate and returns at most q.Limit rows.
	Search(ctx context.Context, q *Query) (*SearchResult, error)
}

// Writer stores products. Used by fixtures and seeding, never by request handling.
type Writer interface {
	Put(ctx context.Context, fields map[string]string) error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}
