package query

import (
	"strings"

	"github.com/kailas-cloud/beautydex/internal/domain/text"
)

// Query is a parsed user request. All fields are derived once at Parse time.
type Query struct {
	raw        string
	normalized string
	tokens     []string
}

// Parse normalizes raw and splits it with the given tokenizer.
func Parse(raw string, tok text.Tokenizer) Query {
	normalized := text.Normalize(raw)
	return Query{
		raw:        raw,
		normalized: normalized,
		tokens:     tok.Tokenize(normalized),
	}
}

// Raw returns the text as typed by the user.
func (q Query) Raw() string { return q.raw }

// Normalized returns the lowercased, diacritic-folded text.
func (q Query) Normalized() string { return q.normalized }

// Tokens returns a copy of the search terms.
func (q Query) Tokens() []string {
	out := make([]string, len(q.tokens))
	copy(out, q.tokens)
	return out
}

// IsBlank reports whether the query carries no text at all.
func (q Query) IsBlank() bool { return strings.TrimSpace(q.normalized) == "" }
