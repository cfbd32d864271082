// Package nlp wraps the natural-language pieces the extractors share:
// text normalization, named-entity recognition, POS-based award-phrase
// chunking and a text-similarity ratio.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and punctuation, and collapses
// whitespace. Every mention counter keys off this form so that "Beyoncé!"
// and "beyonce" are the same mention.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '-' || r == '.':
			// Kept for award names like "comedy or musical - drama" and
			// "cecil b. demille".
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Similarity returns a 0..1 ratio of how alike two strings are, computed
// from the equal spans of a character diff (2*matches / total length).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a)+len(b) == 0 {
		return 1
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	equal := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			equal += len(d.Text)
		}
	}
	return 2 * float64(equal) / float64(len(a)+len(b))
}
