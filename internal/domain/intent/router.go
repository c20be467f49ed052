// Package intent classifies a parsed query into one of four intents.
package intent

import (
	"math/rand/v2"

	"github.com/kailas-cloud/beautydex/internal/domain/search/query"
)

// Picker selects an index in [0, n). It is called with n > 0.
type Picker func(n int) int

// RandomPicker picks uniformly at random.
func RandomPicker() Picker { return rand.IntN }

// FixedPicker always picks i (wrapped into range).
func FixedPicker(i int) Picker {
	return func(n int) int {
		if i < 0 {
			return 0
		}
		return i % n
	}
}

// Router is a stateless, priority-ordered classifier.
type Router struct {
	vocab Vocabulary
	pick  Picker
	limit int
}

// Option configures a Router.
type Option func(*Router)

// WithPicker sets the GenericBrowse category selection strategy.
func WithPicker(p Picker) Option {
	return func(r *Router) {
		if p != nil {
			r.pick = p
		}
	}
}

// WithLimit overrides the per-intent result limit.
func WithLimit(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.limit = n
		}
	}
}

// NewRouter creates a Router. The picker defaults to RandomPicker.
func NewRouter(vocab Vocabulary, opts ...Option) *Router {
	r := &Router{vocab: vocab, pick: RandomPicker(), limit: DefaultLimit}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Classify evaluates the branches in order: TopRated, CategoryBrowse,
// GenericBrowse, FreeTextSearch. The first matching branch wins.
func (r *Router) Classify(q query.Query) Intent {
	s := q.Normalized()

	if containsAny(s, r.vocab.topRated) {
		return NewTopRated().WithLimit(r.limit)
	}
	if e, ok := r.vocab.lexicon.Match(s); ok {
		return NewCategoryBrowse(e).WithLimit(r.limit)
	}
	if containsAny(s, r.vocab.generic) {
		entries := r.vocab.lexicon.Entries()
		i := r.pick(len(entries))
		if i < 0 || i >= len(entries) {
			i = 0
		}
		return NewGenericBrowse(entries[i]).WithLimit(r.limit)
	}
	return NewFreeTextSearch(q.Tokens()).WithLimit(r.limit)
}
