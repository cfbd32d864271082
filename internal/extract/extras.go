package extract

import (
	"context"
	"regexp"
	"sync"

	"redcarpet/internal/aggregate"
	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

// Extra categories are crowd-voted, not ceremony awards: the audience
// decides who dressed best and who gave the best speech.
const (
	GoalBestDressed  = "best dressed"
	GoalWorstDressed = "worst dressed"
	GoalBestSpeech   = "best speech"
	GoalWorstSpeech  = "worst speech"
)

// Goals lists the extra categories in presentation order.
var Goals = []string{GoalBestDressed, GoalWorstDressed, GoalBestSpeech, GoalWorstSpeech}

var goalPatterns = map[string]*regexp.Regexp{
	GoalBestDressed:  regexp.MustCompile(`(?i)\bbest[- ]dressed\b|\b(?:gorgeous|stunning|beautiful|amazing)\b.*\b(?:dress|gown|outfit)\b|\b(?:dress|gown|outfit)\b.*\b(?:gorgeous|stunning|beautiful|amazing)\b`),
	GoalWorstDressed: regexp.MustCompile(`(?i)\bworst[- ]dressed\b|\b(?:ugly|hideous|awful|terrible)\b.*\b(?:dress|gown|outfit)\b|\b(?:dress|gown|outfit)\b.*\b(?:ugly|hideous|awful|terrible)\b`),
	GoalBestSpeech:   regexp.MustCompile(`(?i)\b(?:best|great|amazing|beautiful|moving|hilarious|funniest?)\b.*\bspeech\b|\bspeech\b.*\b(?:best|great|amazing|beautiful|moving|hilarious)\b`),
	GoalWorstSpeech:  regexp.MustCompile(`(?i)\b(?:worst|awkward|boring|terrible|awful|rambling)\b.*\bspeech\b|\bspeech\b.*\b(?:worst|awkward|boring|terrible|awful)\b`),
}

// ExtrasExtractor scores the crowd-voted categories. Unlike the award slots,
// these are pure popularity contests, so candidates are ranked by the
// configured aggregation strategy with retweet weight rather than by raw
// mention counts.
type ExtrasExtractor struct {
	// MinMentions is the count a person needs before they are believed.
	MinMentions int
	// Workers bounds the named-entity recognition pool.
	Workers int

	mu  sync.Mutex
	agg *aggregate.Multi
}

// NewExtrasExtractor returns an ExtrasExtractor ranking candidates under the
// given strategy.
func NewExtrasExtractor(strategy aggregate.Strategy, minMentions, workers int) *ExtrasExtractor {
	return &ExtrasExtractor{
		MinMentions: minMentions,
		Workers:     workers,
		agg:         aggregate.NewMulti(strategy, Goals...),
	}
}

// Extract maps each extra category to the crowd's pick, empty when nobody
// clears the mention threshold. Dress tweets feed the dressed categories;
// speech opinions show up everywhere, so all tweets are scanned.
func (e *ExtrasExtractor) Extract(ctx context.Context, tweets []tweet.Tweet) (map[string]string, error) {
	defer logging.StartTimer(logging.CategoryExtract, "extract extras").Stop()

	err := forEach(ctx, tweets, e.Workers, func(t tweet.Tweet) {
		var matched []string
		for _, goal := range Goals {
			if goalPatterns[goal].MatchString(t.Text) {
				matched = append(matched, goal)
			}
		}
		if len(matched) == 0 {
			return
		}
		var names []string
		for _, p := range nlp.Persons(t.Text) {
			if LooksLikePerson(p) {
				names = append(names, nlp.Normalize(p))
			}
		}
		if len(names) == 0 {
			return
		}
		e.mu.Lock()
		for _, goal := range matched {
			for _, name := range names {
				e.agg.Observe(goal, name, t.Retweets)
			}
		}
		e.mu.Unlock()
	})
	if err != nil {
		return nil, err
	}

	picks := e.agg.Best(e.MinMentions)
	for _, goal := range Goals {
		stats := e.agg.Role(goal).Stats()
		logging.Extract("%s: %d candidates over %d mentions, top %q",
			goal, stats.Candidates, stats.Observations, stats.Top)
	}
	return picks, nil
}

// Candidates returns the top n candidates for an extra category.
func (e *ExtrasExtractor) Candidates(goal string, n int) []string {
	return e.agg.Role(goal).Names(n, 0)
}

// AllCandidates returns the top n candidates for every category at once.
func (e *ExtrasExtractor) AllCandidates(n int) map[string][]string {
	return e.agg.Results(n, 0)
}
