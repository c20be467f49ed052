package intent

import (
	"fmt"

	"github.com/kailas-cloud/beautydex/internal/domain/lexicon"
)

// Kind identifies which branch of the router produced an Intent.
type Kind string

// Intent kinds, listed in router priority order.
const (
	TopRated       Kind = "top_rated"
	CategoryBrowse Kind = "category_browse"
	// GenericBrowse carries a randomly picked category as a suggestion seed.
	GenericBrowse  Kind = "generic_browse"
	FreeTextSearch Kind = "free_text_search"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == TopRated || k == CategoryBrowse || k == GenericBrowse || k == FreeTextSearch
}

// DefaultLimit is the result limit of every branch.
const DefaultLimit = 5

// Intent is the classified meaning of one query. It is created once per request.
type Intent struct {
	kind     Kind
	category string
	synonym  string
	terms    []string
	limit    int
}

// NewTopRated creates a TopRated intent.
func NewTopRated() Intent {
	return Intent{kind: TopRated, limit: DefaultLimit}
}

// NewCategoryBrowse creates a CategoryBrowse intent for the matched lexicon entry.
func NewCategoryBrowse(e lexicon.Entry) Intent {
	return Intent{kind: CategoryBrowse, category: e.Token(), synonym: e.Synonym(), limit: DefaultLimit}
}

// NewGenericBrowse creates a GenericBrowse intent seeded with the picked entry.
func NewGenericBrowse(e lexicon.Entry) Intent {
	return Intent{kind: GenericBrowse, category: e.Token(), synonym: e.Synonym(), limit: DefaultLimit}
}

// NewFreeTextSearch creates a FreeTextSearch intent. terms may be empty.
func NewFreeTextSearch(terms []string) Intent {
	owned := make([]string, len(terms))
	copy(owned, terms)
	return Intent{kind: FreeTextSearch, terms: owned, limit: DefaultLimit}
}

// WithLimit returns a copy with the given limit. Non-positive values keep the current one.
func (i Intent) WithLimit(n int) Intent {
	if n > 0 {
		i.limit = n
	}
	return i
}

// Kind returns the branch identity.
func (i Intent) Kind() Kind { return i.kind }

// Category returns the canonical subcategory token (CategoryBrowse and GenericBrowse only).
func (i Intent) Category() string { return i.category }

// Synonym returns the user-facing synonym the category was resolved from.
func (i Intent) Synonym() string { return i.synonym }

// Terms returns a copy of the free-text search terms.
func (i Intent) Terms() []string {
	out := make([]string, len(i.terms))
	copy(out, i.terms)
	return out
}

// Limit returns the result limit.
func (i Intent) Limit() int { return i.limit }

func (i Intent) String() string {
	switch i.kind {
	case CategoryBrowse, GenericBrowse:
		return fmt.Sprintf("%s(%s)", i.kind, i.category)
	case FreeTextSearch:
		return fmt.Sprintf("%s(%q)", i.kind, i.terms)
	default:
		return string(i.kind)
	}
}
