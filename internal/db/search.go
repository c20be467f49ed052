package db

import "github.com/kailas-cloud/beautydex/internal/domain/search/filter"

// Query is the input for a predicate search.
type Query struct {
	Filters filter.Expression
	// SortBy names a numeric field; empty keeps the store's natural order.
	SortBy   string
	SortDesc bool
	Limit    int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single row returned by a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
