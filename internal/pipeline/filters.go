package pipeline

import (
	"fmt"
	"strings"

	"redcarpet/internal/tweet"
)

// EmptyTextFilter rejects empty or whitespace-only tweets.
type EmptyTextFilter struct{}

func (EmptyTextFilter) Name() string { return "empty" }

func (EmptyTextFilter) Process(t *tweet.Tweet) bool {
	return strings.TrimSpace(t.Text) != ""
}

// KeywordFilter keeps or rejects tweets containing any of its keywords.
// With Exclude set it acts as a blocklist; the extract pipeline uses
// KeywordFilter{Keywords: []string{"RT"}, CaseSensitive: true, Exclude: true}
// to drop retweets.
type KeywordFilter struct {
	Keywords      []string
	CaseSensitive bool
	Exclude       bool
}

func (f KeywordFilter) Name() string {
	return fmt.Sprintf("keyword(%d,exclude=%v)", len(f.Keywords), f.Exclude)
}

func (f KeywordFilter) Process(t *tweet.Tweet) bool {
	text := t.Text
	if !f.CaseSensitive {
		text = strings.ToLower(text)
	}
	for _, kw := range f.Keywords {
		if !f.CaseSensitive {
			kw = strings.ToLower(kw)
		}
		if strings.Contains(text, kw) {
			return !f.Exclude
		}
	}
	return f.Exclude
}

// MinLengthFilter rejects tweets shorter than Min characters.
type MinLengthFilter struct {
	Min int
}

func (f MinLengthFilter) Name() string { return fmt.Sprintf("minlength(%d)", f.Min) }

func (f MinLengthFilter) Process(t *tweet.Tweet) bool {
	return len(t.Text) >= f.Min
}

// RetweetFilter rejects tweets below a retweet-count floor.
type RetweetFilter struct {
	Min int
}

func (f RetweetFilter) Name() string { return fmt.Sprintf("retweets(%d)", f.Min) }

func (f RetweetFilter) Process(t *tweet.Tweet) bool {
	return t.Retweets >= f.Min
}
