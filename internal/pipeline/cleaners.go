package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"redcarpet/internal/tweet"
)

// Cleaner is a text-only stage; it never rejects.
type Cleaner struct {
	name string
	fn   func(string) string
}

func (c Cleaner) Name() string { return c.name }

func (c Cleaner) Process(t *tweet.Tweet) bool {
	t.Text = c.fn(t.Text)
	return true
}

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Strips combining marks after NFD decomposition, turning "Beyoncé"
	// into "Beyonce".
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NewUnicodeCleaner applies NFC normalization, fixing decomposed sequences
// that the firehose occasionally emits.
func NewUnicodeCleaner() Cleaner {
	return Cleaner{name: "unicode", fn: norm.NFC.String}
}

// NewASCIIFoldCleaner strips diacritics so entity counting treats accented
// and plain spellings as the same mention.
func NewASCIIFoldCleaner() Cleaner {
	return Cleaner{name: "asciifold", fn: func(s string) string {
		out, _, err := transform.String(asciiFold, s)
		if err != nil {
			return s
		}
		return out
	}}
}

// NewURLCleaner removes http(s) URLs.
func NewURLCleaner() Cleaner {
	return Cleaner{name: "url", fn: func(s string) string {
		return urlPattern.ReplaceAllString(s, "")
	}}
}

// NewWhitespaceCleaner collapses runs of whitespace into single spaces.
func NewWhitespaceCleaner() Cleaner {
	return Cleaner{name: "whitespace", fn: func(s string) string {
		return whitespacePattern.ReplaceAllString(s, " ")
	}}
}

// NewStripCleaner trims surrounding whitespace.
func NewStripCleaner() Cleaner {
	return Cleaner{name: "strip", fn: strings.TrimSpace}
}

// NewLowercaseCleaner lowercases the text.
func NewLowercaseCleaner() Cleaner {
	return Cleaner{name: "lowercase", fn: strings.ToLower}
}
