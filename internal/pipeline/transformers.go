package pipeline

import (
	"regexp"
	"strings"

	"redcarpet/internal/tweet"
)

var (
	trailingTagsPattern = regexp.MustCompile(`(#\w+\s*)+$`)
	hashtagPattern      = regexp.MustCompile(`#\w+`)
	mentionPattern      = regexp.MustCompile(`@\w+`)
	camelBoundary       = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// HashtagExtractor pulls hashtags appearing at the end of the tweet text
// into Tweet.HashTags and removes them from the text. Hashtags embedded in
// the sentence stay: "I wanna see #AmyPoehler win" keeps its tag because
// stripping it would destroy the sentence.
type HashtagExtractor struct {
	// KeepText leaves the trailing hashtags in the text after extraction.
	KeepText bool
}

func (HashtagExtractor) Name() string { return "hashtags" }

func (h HashtagExtractor) Process(t *tweet.Tweet) bool {
	loc := trailingTagsPattern.FindStringIndex(t.Text)
	if loc == nil {
		return true
	}
	t.HashTags = hashtagPattern.FindAllString(t.Text[loc[0]:], -1)
	if !h.KeepText {
		t.Text = strings.TrimRight(t.Text[:loc[0]], " ")
	}
	return true
}

// MentionHumanizer rewrites @usernames and #hashtags into readable words:
//
//	"#golden_globes"    -> "Golden globes"
//	"#ParksandRec"      -> "Parksand rec"
//	"@Stephen_Sondheim" -> "Stephen sondheim"
type MentionHumanizer struct{}

func (MentionHumanizer) Name() string { return "humanize" }

func (MentionHumanizer) Process(t *tweet.Tweet) bool {
	text := t.Text
	if strings.ContainsRune(text, '@') {
		text = mentionPattern.ReplaceAllStringFunc(text, func(m string) string {
			return humanizeTag(m[1:])
		})
	}
	if strings.ContainsRune(text, '#') {
		text = hashtagPattern.ReplaceAllStringFunc(text, func(m string) string {
			return humanizeTag(m[1:])
		})
	}
	t.Text = text
	return true
}

// humanizeTag converts a tag body into "Sentence case" words. Tags already
// containing underscores are split on them; otherwise camel-case boundaries
// become word breaks.
func humanizeTag(s string) string {
	if !strings.ContainsRune(s, '_') {
		s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	}
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
