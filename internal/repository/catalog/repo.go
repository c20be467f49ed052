// Package catalog adapts a catalog driver to product-level reads.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
)

// store is the consumer interface for catalog reads (ISP).
type store interface {
	FindByID(ctx context.Context, id string) (map[string]string, error)
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements the usecase catalog gateways over any db driver.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FindByID loads a single product by product_id.
func (r *Repo) FindByID(ctx context.Context, id string) (product.Product, error) {
	fields, err := r.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return product.Product{}, domain.ErrNotFound
		}
		return product.Product{}, fmt.Errorf("%w: find %s: %w", domain.ErrStore, id, err)
	}

	p, err := product.FromFields(fields)
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: decode %s: %w", domain.ErrStore, id, err)
	}
	return p, nil
}

// Find runs a predicate read and returns products in store order.
func (r *Repo) Find(ctx context.Context, req *request.Request) ([]product.Product, error) {
	q := &db.Query{
		Filters: req.Filters(),
		Limit:   req.Limit(),
	}
	if s := req.Sort(); s != nil {
		q.SortBy = s.Field()
		q.SortDesc = s.Descending()
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %w", domain.ErrStore, err)
	}

	return parseEntries(sr), nil
}

// parseEntries converts driver rows into products, skipping rows that fail validation.
func parseEntries(sr *db.SearchResult) []product.Product {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	products := make([]product.Product, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		fields := entry.Fields
		if fields[product.FieldID] == "" {
			fields = withID(fields, idFromKey(entry.Key))
		}
		p, err := product.FromFields(fields)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products
}

// idFromKey extracts the product id from a storage key like "<prefix>product:<id>".
func idFromKey(key string) string {
	if i := strings.LastIndex(key, "product:"); i >= 0 {
		return key[i+len("product:"):]
	}
	return key
}

func withID(fields map[string]string, id string) map[string]string {
	m := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		m[k] = v
	}
	m[product.FieldID] = id
	return m
}
