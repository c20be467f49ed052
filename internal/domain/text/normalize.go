// Package text holds the total, side-effect free text transforms applied to user queries.
package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// foldTable maps the extended-Latin letters of the i/g/u/s/o/c family to their base form.
// Input is already lowercase when the table is applied.
var foldTable = strings.NewReplacer(
	"ı", "i",
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ö", "o",
	"ç", "c",
)

// Normalize lowercases s with Turkish casing rules (İ->i, I->ı) and folds the
// fixed diacritic set to base Latin letters. Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is stateful, so one per call.
	lowered := cases.Lower(language.Turkish).String(norm.NFC.String(s))
	return fold(lowered)
}

// fold applies the fold table until NFC stops composing new letters. Folding can
// leave a base letter next to a combining mark that NFC then composes (s + U+0327
// becomes ş again), so a single pass is not a fixed point. Each composition drops
// a rune, so the loop terminates.
func fold(s string) string {
	out := foldTable.Replace(s)
	for {
		next := foldTable.Replace(norm.NFC.String(out))
		if next == out {
			return out
		}
		out = next
	}
}
