package request

import (
	"fmt"

	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
)

// Catalog request limits.
const (
	DefaultLimit = 5
	// MaxLimit is the hard ceiling regardless of configuration.
	MaxLimit = 100
)

// Sort orders results by a numeric field. Rows with equal keys keep the store's natural order.
type Sort struct {
	field      string
	descending bool
}

// NewSort validates and creates a Sort.
func NewSort(field string, descending bool) (Sort, error) {
	if field == "" {
		return Sort{}, fmt.Errorf("sort field is required")
	}
	return Sort{field: field, descending: descending}, nil
}

// Field returns the sort key.
func (s Sort) Field() string { return s.field }

// Descending reports whether larger values come first.
func (s Sort) Descending() bool { return s.descending }

// Request is a validated catalog read: predicate, optional order and a limit.
type Request struct {
	filters filter.Expression
	sort    *Sort
	limit   int
}

// New validates and normalizes request parameters.
// Defaults: limit=5. Limit is clamped to MaxLimit.
func New(filters filter.Expression, sort *Sort, limit int) (Request, error) {
	if sort != nil && sort.field == "" {
		return Request{}, fmt.Errorf("sort field is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{filters: filters, sort: sort, limit: limit}, nil
}

// Filters returns the predicate.
func (r *Request) Filters() filter.Expression { return r.filters }

// Sort returns the ordering, nil for natural order.
func (r *Request) Sort() *Sort { return r.sort }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }
