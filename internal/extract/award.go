package extract

import (
	"regexp"
	"sort"
	"strings"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

// awardRewrites nudge noisy crowd phrasing toward the official wording.
// Order matters: shorthand expansion runs before the structural rewrites.
var awardRewrites = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`\btv\b`), "television"},
	{regexp.MustCompile(`\bmini[- ]?series\b`), "mini-series"},
	{regexp.MustCompile(`\bmusical or comedy\b`), "comedy or musical"},
	{regexp.MustCompile(`\bbest supporting actor\b`), "best performance by an actor in a supporting role"},
	{regexp.MustCompile(`\bbest supporting actress\b`), "best performance by an actress in a supporting role"},
	{regexp.MustCompile(`\bbest actor\b`), "best performance by an actor"},
	{regexp.MustCompile(`\bbest actress\b`), "best performance by an actress"},
	{regexp.MustCompile(`\b(motion picture|television series) (drama|comedy or musical)\b`), "$1 - $2"},
	{regexp.MustCompile(`\bbest (director|screenplay|original score|original song)$`), "best $1 - motion picture"},
	{regexp.MustCompile(`\bcecil b\.? demille\b.*`), nlp.CecilAward},
}

// CanonicalizeAward rewrites a detected award phrase into the official
// phrasing where the difference is a known shorthand.
func CanonicalizeAward(phrase string) string {
	out := nlp.Normalize(phrase)
	for _, rw := range awardRewrites {
		out = rw.pattern.ReplaceAllString(out, rw.repl)
	}
	return strings.Join(strings.Fields(out), " ")
}

// AwardExtractor discovers the award names themselves from the phrases
// tweets use, without a template list.
type AwardExtractor struct {
	// MinMentions drops phrases seen fewer times than this.
	MinMentions int
	// ClusterSimilarity merges phrases at least this similar (0..1).
	ClusterSimilarity float64
	// ExpectedCount caps how many awards are returned.
	ExpectedCount int

	counts Counter
}

// NewAwardExtractor returns an AwardExtractor with the given thresholds.
func NewAwardExtractor(minMentions int, clusterSim float64, expectedCount int) *AwardExtractor {
	return &AwardExtractor{
		MinMentions:       minMentions,
		ClusterSimilarity: clusterSim,
		ExpectedCount:     expectedCount,
	}
}

// Extract returns discovered award names, most mentioned first. tweetAwards
// carries phrases already detected during grouping, keyed by tweet ID; when
// a tweet has none its text is chunked directly.
func (e *AwardExtractor) Extract(tweets []tweet.Tweet, tweetAwards map[int64][]string) []string {
	defer logging.StartTimer(logging.CategoryExtract, "extract awards").Stop()

	raw := make(Counter)
	for _, t := range tweets {
		phrases, ok := tweetAwards[t.ID]
		if !ok {
			phrases = nlp.AwardPhrases(t.Text)
		}
		for _, p := range phrases {
			raw.Add(CanonicalizeAward(p))
		}
	}

	filtered := make(Counter)
	for name, count := range raw {
		if count >= e.MinMentions {
			filtered[name] = count
		}
	}

	e.counts = e.cluster(filtered)
	awards := e.counts.TopNames(e.ExpectedCount, 0)
	logging.Extract("discovered %d awards from %d distinct phrases", len(awards), len(raw))
	return awards
}

// cluster merges near-duplicate phrasings of the same award. Phrases are
// folded most-popular first; each joins the first existing cluster it is
// similar enough to, and the longest member becomes the cluster name since
// crowd shorthand truncates rather than elaborates.
func (e *AwardExtractor) cluster(counts Counter) Counter {
	type cluster struct {
		name  string
		count int
	}

	var clusters []*cluster
	for _, cand := range counts.MostCommon(0) {
		var home *cluster
		for _, cl := range clusters {
			if nlp.Similarity(cand.Name, cl.name) >= e.ClusterSimilarity {
				home = cl
				break
			}
		}
		if home == nil {
			clusters = append(clusters, &cluster{name: cand.Name, count: cand.Count})
			continue
		}
		home.count += cand.Count
		if len(cand.Name) > len(home.name) {
			home.name = cand.Name
		}
	}

	merged := make(Counter, len(clusters))
	for _, cl := range clusters {
		merged[cl.name] += cl.count
	}
	return merged
}

// Candidates returns the top n discovered award phrases after clustering.
func (e *AwardExtractor) Candidates(n int) []string {
	return e.counts.TopNames(n, 0)
}

// SortAwards orders awards for presentation: Cecil B. DeMille first, the
// rest alphabetically.
func SortAwards(awards []string) []string {
	out := append([]string(nil), awards...)
	sort.Slice(out, func(i, j int) bool {
		if out[i] == nlp.CecilAward {
			return true
		}
		if out[j] == nlp.CecilAward {
			return false
		}
		return out[i] < out[j]
	})
	return out
}
