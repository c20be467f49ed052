package health

import "context"

// CatalogPinger checks catalog driver availability.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// Checker is an auxiliary component probe, such as the Redis search index.
type Checker func(ctx context.Context) error
