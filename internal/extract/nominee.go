package extract

import (
	"context"
	"regexp"
	"strings"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

// nomineePatterns capture entities discussed as contenders rather than
// winners: nomination language, wishes and robbery complaints. Captures
// anchor on capitalized tokens, same as the winner patterns.
var nomineePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][\w.'-]*(?:\s+[A-Z\d][\w.'-]*){0,4})(?:\s+(?i:is|was|got))?\s+(?i:nominated)\b`),
	regexp.MustCompile(`(?i:hope|wish|want)\s+([A-Z][\w.'-]*(?:\s+[A-Z\d][\w.'-]*){0,4})\s+(?i:wins|to win)\b`),
	regexp.MustCompile(`([A-Z][\w.'-]*(?:\s+[A-Z\d][\w.'-]*){0,4})\s+(?i:should have won|should win|was robbed|got robbed|deserved)\b`),
	regexp.MustCompile(`(?i:rooting for)\s+([A-Z][\w.'-]*(?:\s+[\w.'-]+){0,4}?)(?:[!.,#@]|$)`),
}

// NomineeExtractor finds each award's nominees from nominee-group tweets.
type NomineeExtractor struct {
	// MinMentions is the count a candidate needs before it is believed.
	MinMentions int
	// TopN caps how many nominees each award gets.
	TopN int
	// Workers bounds the named-entity recognition pool.
	Workers int

	counts map[string]Counter
}

// NewNomineeExtractor returns a NomineeExtractor with the given thresholds.
func NewNomineeExtractor(minMentions, topN, workers int) *NomineeExtractor {
	return &NomineeExtractor{MinMentions: minMentions, TopN: topN, Workers: workers}
}

// Extract maps each award to its nominees, most mentioned first. The
// winner is excluded from its own nominee list, and a lifetime achievement
// award has no nominees at all.
func (e *NomineeExtractor) Extract(ctx context.Context, tweets []tweet.Tweet, awards []string, tweetAwards map[int64][]string, winners map[string]string) (map[string][]string, error) {
	defer logging.StartTimer(logging.CategoryExtract, "extract nominees").Stop()

	locked := make(map[string]*lockedCounter, len(awards))
	for _, award := range awards {
		locked[award] = newLockedCounter()
	}

	err := forEach(ctx, tweets, e.Workers, func(t tweet.Tweet) {
		matched := matchAwards(t, awards, tweetAwards)
		if len(matched) == 0 {
			return
		}
		spans := nomineeSpans(t.Text)
		for _, award := range matched {
			if award == nlp.CecilAward {
				continue
			}
			var names []string
			for _, span := range spans {
				if Validate(span, award) {
					names = append(names, nlp.Normalize(span))
				}
			}
			locked[award].AddAll(names)
		}
	})
	if err != nil {
		return nil, err
	}

	e.counts = make(map[string]Counter, len(awards))
	nominees := make(map[string][]string, len(awards))
	for _, award := range awards {
		e.counts[award] = locked[award].c
		if award == nlp.CecilAward {
			nominees[award] = []string{}
			continue
		}
		var picked []string
		for _, name := range e.counts[award].TopNames(0, e.MinMentions) {
			if name == winners[award] {
				continue
			}
			picked = append(picked, name)
			if len(picked) == e.TopN {
				break
			}
		}
		if picked == nil {
			picked = []string{}
		}
		nominees[award] = picked
	}

	logging.Extract("extracted nominees for %d awards", len(awards))
	return nominees, nil
}

// Candidates returns the top n nominee candidates for an award.
func (e *NomineeExtractor) Candidates(award string, n int) []string {
	return e.counts[award].TopNames(n, 0)
}

func nomineeSpans(text string) []string {
	var spans []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			return
		}
		seen[strings.ToLower(s)] = true
		spans = append(spans, s)
	}

	for _, re := range nomineePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	for _, p := range nlp.Persons(text) {
		add(p)
	}
	return spans
}
