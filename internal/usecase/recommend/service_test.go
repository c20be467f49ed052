package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/beautydex/internal/db/memory"
	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
	"github.com/kailas-cloud/beautydex/internal/repository/catalog"
)

// --- Mocks ---

type mockCatalog struct {
	source    product.Product
	sourceErr error
	related   []product.Product
	findErr   error
	findCalls int
	lastReq   *request.Request
}

func (m *mockCatalog) FindByID(_ context.Context, _ string) (product.Product, error) {
	return m.source, m.sourceErr
}

func (m *mockCatalog) Find(_ context.Context, req *request.Request) ([]product.Product, error) {
	m.findCalls++
	m.lastReq = req
	return m.related, m.findErr
}

func mustProduct(t *testing.T, id, subcategory string) product.Product {
	t.Helper()
	p, err := product.New(id, product.Attributes{Name: "Ürün " + id, Subcategory: subcategory})
	if err != nil {
		t.Fatalf("product.New: %v", err)
	}
	return p
}

// --- Tests ---

func TestRecommend_BuildsRelatedPredicate(t *testing.T) {
	cat := &mockCatalog{
		source:  mustProduct(t, "A", "ruj"),
		related: []product.Product{mustProduct(t, "B", "ruj")},
	}
	svc := New(cat, zap.NewNop())

	got, err := svc.Recommend(context.Background(), "A", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "B" {
		t.Errorf("got %v", got)
	}

	f := cat.lastReq.Filters()
	if len(f.Must()) != 1 || f.Must()[0].Op() != filter.Contains ||
		f.Must()[0].Key() != "subcategory" || f.Must()[0].Value() != "ruj" {
		t.Errorf("must = %+v", f.Must())
	}
	if len(f.MustNot()) != 1 || f.MustNot()[0].Op() != filter.Equals || f.MustNot()[0].Value() != "A" {
		t.Errorf("must_not = %+v", f.MustNot())
	}
	if cat.lastReq.Limit() != DefaultLimit+1 {
		t.Errorf("limit = %d, want %d", cat.lastReq.Limit(), DefaultLimit+1)
	}
}

func TestRecommend_DropsSourceFromResults(t *testing.T) {
	cat := &mockCatalog{
		source: mustProduct(t, "A", "ruj"),
		related: []product.Product{
			mustProduct(t, "A", "ruj"),
			mustProduct(t, "B", "ruj"),
		},
	}
	svc := New(cat, zap.NewNop())

	got, _ := svc.Recommend(context.Background(), "A", 5)
	for _, p := range got {
		if p.ID() == "A" {
			t.Fatal("source product returned")
		}
	}
	if len(got) != 1 {
		t.Errorf("got %v", got)
	}
}

func TestRecommend_EmptySubcategory(t *testing.T) {
	cat := &mockCatalog{source: mustProduct(t, "A", "  ")}
	svc := New(cat, zap.NewNop())

	got, err := svc.Recommend(context.Background(), "A", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
	if cat.findCalls != 0 {
		t.Errorf("catalog queried %d times", cat.findCalls)
	}
}

func TestRecommend_SourceNotFound(t *testing.T) {
	cat := &mockCatalog{sourceErr: domain.ErrNotFound}
	svc := New(cat, zap.NewNop())

	got, err := svc.Recommend(context.Background(), "missing", 5)
	if err != nil {
		t.Fatalf("not found must not escalate: %v", err)
	}
	if got != nil {
		t.Errorf("got %v", got)
	}
}

func TestRecommend_StoreErrorDegrades(t *testing.T) {
	tests := []struct {
		name string
		cat  *mockCatalog
	}{
		{"lookup", &mockCatalog{sourceErr: fmt.Errorf("%w: timeout", domain.ErrStore)}},
		{"search", &mockCatalog{source: mustProduct(t, "A", "ruj"), findErr: domain.ErrStore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			svc := New(tt.cat, zap.New(core))

			got, err := svc.Recommend(context.Background(), "A", 5)
			if err != nil {
				t.Fatalf("store error must degrade: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("got %v", got)
			}
			if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
				t.Errorf("logs = %v", logs.All())
			}
		})
	}
}

func TestRecommend_Validation(t *testing.T) {
	svc := New(&mockCatalog{}, nil)

	if _, err := svc.Recommend(context.Background(), " ", 5); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("blank id: %v", err)
	}
	if _, err := svc.Recommend(context.Background(), "A", -1); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("negative limit: %v", err)
	}
}

func TestRecommend_LimitOptions(t *testing.T) {
	cat := &mockCatalog{source: mustProduct(t, "A", "ruj")}
	svc := New(cat, zap.NewNop(), WithDefaultLimit(3), WithMaxLimit(10))

	_, _ = svc.Recommend(context.Background(), "A", 0)
	if cat.lastReq.Limit() != 4 {
		t.Errorf("default limit = %d, want 3+1", cat.lastReq.Limit())
	}

	_, _ = svc.Recommend(context.Background(), "A", 40)
	if cat.lastReq.Limit() != 11 {
		t.Errorf("capped limit = %d, want 10+1", cat.lastReq.Limit())
	}
}

func TestRecommend_TruncatesToLimit(t *testing.T) {
	cat := &mockCatalog{
		source: mustProduct(t, "A", "ruj"),
		related: []product.Product{
			mustProduct(t, "B", "ruj"),
			mustProduct(t, "C", "ruj"),
			mustProduct(t, "D", "ruj"),
		},
	}
	svc := New(cat, zap.NewNop())

	got, _ := svc.Recommend(context.Background(), "A", 2)
	if len(got) != 2 || got[0].ID() != "B" || got[1].ID() != "C" {
		t.Errorf("got %v", got)
	}
}

func TestRecommend_SourceInResultsStillFillsLimit(t *testing.T) {
	cat := &mockCatalog{
		source: mustProduct(t, "A", "ruj"),
		related: []product.Product{
			mustProduct(t, "A", "ruj"),
			mustProduct(t, "B", "ruj"),
			mustProduct(t, "C", "ruj"),
		},
	}
	svc := New(cat, zap.NewNop())

	got, err := svc.Recommend(context.Background(), "A", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.lastReq.Limit() != 3 {
		t.Errorf("requested %d rows, want limit+1", cat.lastReq.Limit())
	}
	if len(got) != 2 || got[0].ID() != "B" || got[1].ID() != "C" {
		t.Errorf("got %v, want [B C]", got)
	}
}

func TestProduct(t *testing.T) {
	cat := &mockCatalog{source: mustProduct(t, "A", "ruj")}
	svc := New(cat, zap.NewNop())

	p, err := svc.Product(context.Background(), "A")
	if err != nil || p.ID() != "A" {
		t.Fatalf("Product = %v, %v", p, err)
	}

	if _, err = svc.Product(context.Background(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("blank id: %v", err)
	}
}

func TestProduct_FailuresReadAsNotFound(t *testing.T) {
	for _, cause := range []error{domain.ErrNotFound, domain.ErrStore} {
		svc := New(&mockCatalog{sourceErr: cause}, zap.NewNop())
		if _, err := svc.Product(context.Background(), "A"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("cause %v: got %v", cause, err)
		}
	}
}

// End to end: the source product never appears among its recommendations.

func TestRecommend_EndToEndWithMemoryCatalog(t *testing.T) {
	store, err := memory.NewStore(
		map[string]string{"product_id": "A", "name": "Ruj A", "subcategory": "ruj"},
		map[string]string{"product_id": "B", "name": "Ruj B", "subcategory": "ruj"},
		map[string]string{"product_id": "C", "name": "Far C", "subcategory": "far"},
	)
	if err != nil {
		t.Fatalf("memory.NewStore: %v", err)
	}
	svc := New(catalog.New(store), zap.NewNop())

	got, err := svc.Recommend(context.Background(), "A", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "B" {
		t.Errorf("recommend(A) = %v, want [B]", got)
	}

	for _, id := range []string{"A", "B", "C"} {
		related, _ := svc.Recommend(context.Background(), id, 10)
		for _, p := range related {
			if p.ID() == id {
				t.Errorf("recommend(%s) contains itself", id)
			}
		}
	}

	none, err := svc.Recommend(context.Background(), "Z", 0)
	if err != nil || len(none) != 0 {
		t.Errorf("recommend(Z) = %v, %v", none, err)
	}
}
