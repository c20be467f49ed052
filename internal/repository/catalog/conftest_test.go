package catalog

import (
	"context"
	"testing"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	findByIDFn func(ctx context.Context, id string) (map[string]string, error)
	searchFn   func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

func (m *mockStore) FindByID(ctx context.Context, id string) (map[string]string, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func mustContains(t *testing.T, key, value string) filter.Condition {
	t.Helper()
	c, err := filter.NewContains(key, value)
	if err != nil {
		t.Fatalf("NewContains: %v", err)
	}
	return c
}

func mustRequest(t *testing.T, expr filter.Expression, sort *request.Sort, limit int) *request.Request {
	t.Helper()
	req, err := request.New(expr, sort, limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}
