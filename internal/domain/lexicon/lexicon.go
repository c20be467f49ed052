// Package lexicon maps user-facing category synonyms to canonical subcategory tokens.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/beautydex/internal/domain/text"
)

// Canonical subcategory tokens as they appear in the catalog.
const (
	TokenBrowMascara = "kas_maskarasi"
	TokenLipstick    = "ruj"
	TokenFoundation  = "fondoten"
	TokenEyeshadow   = "far"
	TokenBlush       = "allık"
	TokenConcealer   = "kapatıcı"
	TokenEyeliner    = "eyeliner"
	TokenBrow        = "kas"
)

// defaultEntries is the declaration order used to resolve queries that contain
// several synonyms: the first entry contained in the query wins.
var defaultEntries = []struct{ synonym, token string }{
	{"rimel", TokenBrowMascara},
	{"maskara", TokenBrowMascara},
	{"mascara", TokenBrowMascara},
	{"ruj", TokenLipstick},
	{"lipstick", TokenLipstick},
	{"fondöten", TokenFoundation},
	{"foundation", TokenFoundation},
	{"far", TokenEyeshadow},
	{"eyeshadow", TokenEyeshadow},
	{"allık", TokenBlush},
	{"blush", TokenBlush},
	{"kapatıcı", TokenConcealer},
	{"concealer", TokenConcealer},
	{"eyeliner", TokenEyeliner},
	{"kaş", TokenBrow},
}

// Entry is a single synonym -> token mapping.
type Entry struct {
	synonym    string
	normalized string
	token      string
}

// NewEntry validates and creates an Entry. The synonym is matched in normalized form.
func NewEntry(synonym, token string) (Entry, error) {
	normalized := strings.TrimSpace(text.Normalize(synonym))
	if normalized == "" {
		return Entry{}, fmt.Errorf("synonym is required")
	}
	if strings.TrimSpace(token) == "" {
		return Entry{}, fmt.Errorf("canonical token is required for synonym %q", synonym)
	}
	return Entry{synonym: synonym, normalized: normalized, token: token}, nil
}

// Synonym returns the synonym as declared.
func (e Entry) Synonym() string { return e.synonym }

// Normalized returns the synonym in normalized form.
func (e Entry) Normalized() string { return e.normalized }

// Token returns the canonical subcategory token.
func (e Entry) Token() string { return e.token }

// Lexicon is an immutable, ordered synonym table.
type Lexicon struct {
	entries []Entry
	index   map[string]int
}

// New creates a Lexicon preserving the declaration order of entries.
func New(entries ...Entry) (Lexicon, error) {
	if len(entries) == 0 {
		return Lexicon{}, fmt.Errorf("at least one entry is required")
	}
	index := make(map[string]int, len(entries))
	owned := make([]Entry, len(entries))
	for i, e := range entries {
		if e.normalized == "" {
			return Lexicon{}, fmt.Errorf("entry %d is not initialized", i)
		}
		if _, dup := index[e.normalized]; dup {
			return Lexicon{}, fmt.Errorf("duplicate synonym %q", e.synonym)
		}
		index[e.normalized] = i
		owned[i] = e
	}
	return Lexicon{entries: owned, index: index}, nil
}

// Default returns the built-in beauty category lexicon.
func Default() Lexicon {
	entries := make([]Entry, 0, len(defaultEntries))
	for _, d := range defaultEntries {
		e, err := NewEntry(d.synonym, d.token)
		if err != nil {
			panic(err)
		}
		entries = append(entries, e)
	}
	l, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup resolves a single term to its canonical token.
func (l Lexicon) Lookup(term string) (string, bool) {
	i, ok := l.index[strings.TrimSpace(text.Normalize(term))]
	if !ok {
		return "", false
	}
	return l.entries[i].token, true
}

// Match returns the first entry, in declaration order, whose synonym is contained in s.
func (l Lexicon) Match(s string) (Entry, bool) {
	normalized := text.Normalize(s)
	for _, e := range l.entries {
		if strings.Contains(normalized, e.normalized) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns the entries in declaration order.
func (l Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of synonyms.
func (l Lexicon) Len() int { return len(l.entries) }
