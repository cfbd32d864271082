package extract

import (
	"context"
	"regexp"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

var presenterPattern = regexp.MustCompile(`(?i)\bpresent(?:s|ed|ing|er|ers)?\b|\bintroduc(?:es|ed|ing)\b`)

// PresenterExtractor finds who presented each award. Presenters are always
// people, and each award usually has one or two, so only PERSON entities
// count and the list is capped tightly.
type PresenterExtractor struct {
	// MinMentions is the preferred threshold. Presenter chatter is thin,
	// so when nothing clears it the extractor falls back to anyone
	// mentioned at least twice.
	MinMentions int
	// TopN caps how many presenters each award gets.
	TopN int
	// Workers bounds the named-entity recognition pool.
	Workers int

	counts map[string]Counter
}

// NewPresenterExtractor returns a PresenterExtractor with the given
// thresholds.
func NewPresenterExtractor(minMentions, topN, workers int) *PresenterExtractor {
	return &PresenterExtractor{MinMentions: minMentions, TopN: topN, Workers: workers}
}

// Extract maps each award to its presenters. Winners are excluded; a tweet
// about a presentation names both, and the winner has already been picked.
func (e *PresenterExtractor) Extract(ctx context.Context, tweets []tweet.Tweet, awards []string, tweetAwards map[int64][]string, winners map[string]string) (map[string][]string, error) {
	defer logging.StartTimer(logging.CategoryExtract, "extract presenters").Stop()

	locked := make(map[string]*lockedCounter, len(awards))
	for _, award := range awards {
		locked[award] = newLockedCounter()
	}

	err := forEach(ctx, tweets, e.Workers, func(t tweet.Tweet) {
		if !presenterPattern.MatchString(t.Text) {
			return
		}
		matched := matchAwards(t, awards, tweetAwards)
		if len(matched) == 0 {
			return
		}
		var names []string
		for _, p := range nlp.Persons(t.Text) {
			for _, name := range splitJointNames(p) {
				if LooksLikePerson(name) {
					names = append(names, nlp.Normalize(name))
				}
			}
		}
		for _, award := range matched {
			locked[award].AddAll(names)
		}
	})
	if err != nil {
		return nil, err
	}

	e.counts = make(map[string]Counter, len(awards))
	presenters := make(map[string][]string, len(awards))
	for _, award := range awards {
		e.counts[award] = locked[award].c
		picked := e.pick(award, winners[award], e.MinMentions)
		if len(picked) == 0 && e.MinMentions > 2 {
			picked = e.pick(award, winners[award], 2)
		}
		presenters[award] = picked
	}

	logging.Extract("extracted presenters for %d awards", len(awards))
	return presenters, nil
}

func (e *PresenterExtractor) pick(award, winner string, minCount int) []string {
	picked := []string{}
	for _, name := range e.counts[award].TopNames(0, minCount) {
		if name == winner {
			continue
		}
		picked = append(picked, name)
		if len(picked) == e.TopN {
			break
		}
	}
	return picked
}

// Candidates returns the top n presenter candidates for an award.
func (e *PresenterExtractor) Candidates(award string, n int) []string {
	return e.counts[award].TopNames(n, 0)
}
