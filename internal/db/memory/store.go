// Package memory implements the catalog driver over an insertion-ordered in-process slice.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store keeps rows in insertion order. Ties in a sorted search keep that order.
type Store struct {
	mu    sync.RWMutex
	rows  []map[string]string
	index map[string]int
}

// NewStore creates a store seeded with rows.
func NewStore(rows ...map[string]string) (*Store, error) {
	s := &Store{index: make(map[string]int, len(rows))}
	for _, r := range rows {
		if err := s.Put(context.Background(), r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// Len returns the number of stored products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Put inserts a row or replaces an existing one in place.
func (s *Store) Put(_ context.Context, fields map[string]string) error {
	id := fields[product.FieldID]
	if id == "" {
		return fmt.Errorf("%s is required", product.FieldID)
	}
	row := maps.Clone(fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[id]; ok {
		s.rows[i] = row
		return nil
	}
	s.index[id] = len(s.rows)
	s.rows = append(s.rows, row)
	return nil
}

// FindByID returns a copy of one row.
func (s *Store) FindByID(_ context.Context, id string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return maps.Clone(s.rows[i]), nil
}

// Search filters, stably sorts and truncates the rows.
func (s *Store) Search(_ context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if q.Filters.MatchesNothing() {
		return &db.SearchResult{}, nil
	}

	s.mu.RLock()
	var hits []map[string]string
	for _, r := range s.rows {
		row := r
		if q.Filters.Matches(func(key string) (string, bool) {
			v, ok := row[key]
			return v, ok
		}) {
			hits = append(hits, maps.Clone(row))
		}
	}
	s.mu.RUnlock()

	if q.SortBy != "" {
		slices.SortStableFunc(hits, func(a, b map[string]string) int {
			return compareNumeric(a[q.SortBy], b[q.SortBy], q.SortDesc)
		})
	}

	res := &db.SearchResult{Total: len(hits)}
	if len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}
	for _, h := range hits {
		res.Entries = append(res.Entries, db.SearchEntry{Key: h[product.FieldID], Fields: h})
	}
	return res, nil
}

// compareNumeric orders parseable values by direction and puts unparseable ones last.
func compareNumeric(a, b string, desc bool) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	if desc {
		return cmp.Compare(fb, fa)
	}
	return cmp.Compare(fa, fb)
}
