package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLength drops tokens of this many runes or fewer.
const DefaultMinTokenLength = 2

// Tokenizer splits normalized text into search terms.
type Tokenizer struct {
	minLength int
}

// NewTokenizer creates a Tokenizer discarding tokens whose rune length is <= minLength.
// A negative minLength selects DefaultMinTokenLength.
func NewTokenizer(minLength int) Tokenizer {
	if minLength < 0 {
		minLength = DefaultMinTokenLength
	}
	return Tokenizer{minLength: minLength}
}

// MinLength returns the discard threshold.
func (t Tokenizer) MinLength() int { return t.minLength }

// Tokenize splits s on whitespace runs, preserving order and duplicates.
func (t Tokenizer) Tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= t.minLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
