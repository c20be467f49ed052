package intent

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/beautydex/internal/domain/lexicon"
	"github.com/kailas-cloud/beautydex/internal/domain/text"
)

// Default phrase sets.
var (
	DefaultTopRatedPhrases = []string{
		"en iyi", "en yüksek", "en çok puan", "top rated", "highest rated", "best rated",
	}
	DefaultGenericPhrases = []string{
		"makyaj", "kozmetik", "güzellik", "makeup", "cosmetic", "beauty",
	}
)

// Vocabulary holds the keyword tables the router matches against.
// Phrases are stored normalized and the value is read-only after construction.
type Vocabulary struct {
	topRated []string
	generic  []string
	lexicon  lexicon.Lexicon
}

// NewVocabulary validates and normalizes the phrase sets.
func NewVocabulary(topRated, generic []string, lex lexicon.Lexicon) (Vocabulary, error) {
	if lex.Len() == 0 {
		return Vocabulary{}, fmt.Errorf("lexicon is required")
	}
	tr, err := normalizePhrases("top rated", topRated)
	if err != nil {
		return Vocabulary{}, err
	}
	gen, err := normalizePhrases("generic", generic)
	if err != nil {
		return Vocabulary{}, err
	}
	return Vocabulary{topRated: tr, generic: gen, lexicon: lex}, nil
}

// DefaultVocabulary returns the built-in phrase sets with the default lexicon.
func DefaultVocabulary() Vocabulary {
	v, err := NewVocabulary(DefaultTopRatedPhrases, DefaultGenericPhrases, lexicon.Default())
	if err != nil {
		panic(err)
	}
	return v
}

func normalizePhrases(set string, phrases []string) ([]string, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%s phrases are required", set)
	}
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		n := strings.TrimSpace(text.Normalize(p))
		if n == "" {
			return nil, fmt.Errorf("%s phrase must not be blank", set)
		}
		out = append(out, n)
	}
	return out, nil
}

// Lexicon returns the category lexicon.
func (v Vocabulary) Lexicon() lexicon.Lexicon { return v.lexicon }

// TopRatedPhrases returns a copy of the normalized top-rated phrases.
func (v Vocabulary) TopRatedPhrases() []string { return append([]string(nil), v.topRated...) }

// GenericPhrases returns a copy of the normalized generic phrases.
func (v Vocabulary) GenericPhrases() []string { return append([]string(nil), v.generic...) }

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
