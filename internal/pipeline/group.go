package pipeline

import (
	"regexp"
	"strings"

	"redcarpet/internal/tweet"
)

// Group names produced by GroupFilter.
const (
	GroupHost      = "host"
	GroupWin       = "win"
	GroupNominee   = "nominee"
	GroupPresenter = "presenter"
	GroupDress     = "dress"
)

var groupKeywords = map[string][]string{
	GroupHost:      {"host", "emcee"},
	GroupWin:       {"win", "won", "winner", "congrats", "congratulations"},
	GroupNominee:   {"nominat", "nominee"},
	GroupPresenter: {"present", "introduc"},
	GroupDress:     {"dress", "gown", "outfit", "wearing", "red carpet"},
}

var (
	awardPhrasePattern = regexp.MustCompile(`(?i)\bbest\s+[\w\s\-,]+?(?:actor|actress|picture|film|director|score|song|screenplay|series|feature|television|performance)`)
	cecilPattern       = regexp.MustCompile(`(?i)\bcecil\s+b\.?\s+demille\s+award\b`)
)

// GroupFilter buckets tweets into topic groups so each extraction phase only
// scans the tweets that can possibly feed it. It also records award phrases
// detected per tweet, which the winner/nominee/presenter extractors use to
// associate a tweet with a category. GroupFilter never rejects.
//
// A tweet can land in several groups ("Tina Fey hosting AND winning").
type GroupFilter struct {
	groups      map[string][]tweet.Tweet
	tweetAwards map[int64][]string
}

// NewGroupFilter creates an empty GroupFilter.
func NewGroupFilter() *GroupFilter {
	return &GroupFilter{
		groups:      make(map[string][]tweet.Tweet),
		tweetAwards: make(map[int64][]string),
	}
}

func (g *GroupFilter) Name() string { return "group" }

func (g *GroupFilter) Process(t *tweet.Tweet) bool {
	lower := strings.ToLower(t.Text)

	for group, keywords := range groupKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				g.groups[group] = append(g.groups[group], *t)
				break
			}
		}
	}

	var phrases []string
	if cecilPattern.MatchString(t.Text) {
		phrases = append(phrases, "cecil b demille award")
	}
	for _, m := range awardPhrasePattern.FindAllString(t.Text, -1) {
		if len(m) > 10 && len(m) < 100 {
			phrases = append(phrases, strings.ToLower(m))
		}
	}
	if len(phrases) > 0 {
		g.tweetAwards[t.ID] = append(g.tweetAwards[t.ID], phrases...)
	}

	return true
}

// Groups returns the bucketed tweets.
func (g *GroupFilter) Groups() map[string][]tweet.Tweet { return g.groups }

// Group returns one bucket, nil when empty.
func (g *GroupFilter) Group(name string) []tweet.Tweet { return g.groups[name] }

// TweetAwards returns the award phrases detected per tweet ID.
func (g *GroupFilter) TweetAwards() map[int64][]string { return g.tweetAwards }
