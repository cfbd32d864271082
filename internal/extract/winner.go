package extract

import (
	"context"
	"regexp"
	"strings"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

// winnerPatterns capture the entity on the winning side of the verb. The
// captures anchor on capitalized tokens so "so happy Argo wins" yields
// "Argo", not the whole prefix; validation strips what still slips through.
var winnerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][\w.'-]*(?:\s+[A-Z\d][\w.'-]*){0,4})\s+(?i:wins|won|winning|takes home|just won)\b`),
	regexp.MustCompile(`(?i:goes to|awarded to|congrats to|congratulations to)\s+([A-Z][\w.'-]*(?:\s+[\w.'-]+){0,4}?)(?:\s+(?i:for)\b|[!.,#@]|$)`),
	regexp.MustCompile(`(?i:winner(?:\s+is)?)[:\s]+([A-Z][\w.'-]*(?:\s+[\w.'-]+){0,4}?)(?:[!.,#@]|$)`),
}

// WinnerExtractor finds each award's winner from win-group tweets.
type WinnerExtractor struct {
	// MinMentions is the count a candidate needs to be believed outright.
	// A near miss of up to two mentions is still accepted, since small
	// categories draw little traffic.
	MinMentions int
	// Workers bounds the named-entity recognition pool.
	Workers int

	counts map[string]Counter
}

// NewWinnerExtractor returns a WinnerExtractor with the given thresholds.
func NewWinnerExtractor(minMentions, workers int) *WinnerExtractor {
	return &WinnerExtractor{MinMentions: minMentions, Workers: workers}
}

// Extract maps each award to its winner. Awards with no believable
// candidate map to the empty string. Hosts are excluded as candidates;
// they are named constantly and win nothing.
func (e *WinnerExtractor) Extract(ctx context.Context, tweets []tweet.Tweet, awards []string, tweetAwards map[int64][]string, hosts []string) (map[string]string, error) {
	defer logging.StartTimer(logging.CategoryExtract, "extract winners").Stop()

	excluded := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		excluded[nlp.Normalize(h)] = true
	}

	locked := make(map[string]*lockedCounter, len(awards))
	for _, award := range awards {
		locked[award] = newLockedCounter()
	}

	err := forEach(ctx, tweets, e.Workers, func(t tweet.Tweet) {
		matched := matchAwards(t, awards, tweetAwards)
		if len(matched) == 0 {
			return
		}
		spans := candidateSpans(t.Text)
		for _, award := range matched {
			var names []string
			for _, span := range spans {
				if excluded[nlp.Normalize(span)] {
					continue
				}
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
	winners := make(map[string]string, len(awards))
	floor := e.MinMentions - 2
	if floor < 1 {
		floor = 1
	}
	for _, award := range awards {
		e.counts[award] = locked[award].c
		winners[award] = ""
		if top := e.counts[award].MostCommon(1); len(top) > 0 && top[0].Count >= floor {
			winners[award] = top[0].Name
		}
	}

	logging.Extract("resolved winners for %d of %d awards", countNonEmpty(winners), len(awards))
	return winners, nil
}

// Candidates returns the top n winner candidates for an award.
func (e *WinnerExtractor) Candidates(award string, n int) []string {
	return e.counts[award].TopNames(n, 0)
}

// candidateSpans gathers winner candidates from a tweet: regex captures
// around winning verbs plus recognized PERSON entities.
func candidateSpans(text string) []string {
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

	for _, re := range winnerPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	for _, p := range nlp.Persons(text) {
		add(p)
	}
	return spans
}

func countNonEmpty(m map[string]string) int {
	n := 0
	for _, v := range m {
		if v != "" {
			n++
		}
	}
	return n
}
