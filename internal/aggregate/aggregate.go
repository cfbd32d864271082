// Package aggregate ranks extraction candidates. Counting alone is a crude
// signal: long official titles lose mentions to shorthand, and a heavily
// retweeted announcement carries more weight than ten idle guesses. The
// strategies here blend those signals in different proportions.
package aggregate

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy selects how candidates are scored.
type Strategy string

const (
	// StrategyMostFrequent ranks purely by mention count.
	StrategyMostFrequent Strategy = "most_frequent"
	// StrategyLongest ranks by name length; the fullest phrasing wins.
	StrategyLongest Strategy = "longest"
	// StrategyHighestRetweet ranks by accumulated retweets.
	StrategyHighestRetweet Strategy = "highest_retweet"
	// StrategyWeighted blends frequency, retweets and length 0.4/0.4/0.2.
	StrategyWeighted Strategy = "weighted"
	// StrategyCombined blends frequency, length, total retweets, peak
	// retweets and word count 0.3/0.3/0.2/0.1/0.1.
	StrategyCombined Strategy = "combined"
)

// ParseStrategy converts a config string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMostFrequent, StrategyLongest, StrategyHighestRetweet,
		StrategyWeighted, StrategyCombined:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown aggregation strategy %q", s)
}

// Candidate accumulates the signals observed for one name.
type Candidate struct {
	Name          string
	Frequency     int
	TotalRetweets int
	PeakRetweets  int
}

// Score is a ranked candidate with its strategy score.
type Score struct {
	Candidate
	Score float64
}

// Aggregator collects observations for one slot (one award's winner, the
// host list, an extra category) and ranks them under a strategy.
type Aggregator struct {
	strategy   Strategy
	candidates map[string]*Candidate
}

// New returns an empty Aggregator using the given strategy.
func New(strategy Strategy) *Aggregator {
	return &Aggregator{
		strategy:   strategy,
		candidates: make(map[string]*Candidate),
	}
}

// Observe records one mention of name carried by a tweet with the given
// retweet count.
func (a *Aggregator) Observe(name string, retweets int) {
	if name == "" {
		return
	}
	c, ok := a.candidates[name]
	if !ok {
		c = &Candidate{Name: name}
		a.candidates[name] = c
	}
	c.Frequency++
	c.TotalRetweets += retweets
	if retweets > c.PeakRetweets {
		c.PeakRetweets = retweets
	}
}

// Len returns the number of distinct candidates observed.
func (a *Aggregator) Len() int { return len(a.candidates) }

// Ranked returns up to n candidates ordered by strategy score, ties broken
// by frequency then name. Candidates seen fewer than minFreq times are
// dropped before ranking. n <= 0 returns all.
func (a *Aggregator) Ranked(n, minFreq int) []Score {
	maxFreq, maxLen, maxTotal, maxPeak, maxWords := 0, 0, 0, 0, 0
	for _, c := range a.candidates {
		maxFreq = max(maxFreq, c.Frequency)
		maxLen = max(maxLen, len(c.Name))
		maxTotal = max(maxTotal, c.TotalRetweets)
		maxPeak = max(maxPeak, c.PeakRetweets)
		maxWords = max(maxWords, len(strings.Fields(c.Name)))
	}

	norm := func(v, maxV int) float64 {
		if maxV == 0 {
			return 0
		}
		return float64(v) / float64(maxV)
	}

	out := make([]Score, 0, len(a.candidates))
	for _, c := range a.candidates {
		if c.Frequency < minFreq {
			continue
		}
		freq := norm(c.Frequency, maxFreq)
		length := norm(len(c.Name), maxLen)
		total := norm(c.TotalRetweets, maxTotal)
		peak := norm(c.PeakRetweets, maxPeak)
		words := norm(len(strings.Fields(c.Name)), maxWords)

		var score float64
		switch a.strategy {
		case StrategyMostFrequent:
			score = freq
		case StrategyLongest:
			score = length
		case StrategyHighestRetweet:
			score = total
		case StrategyWeighted:
			score = 0.4*freq + 0.4*total + 0.2*length
		case StrategyCombined:
			score = 0.3*freq + 0.3*length + 0.2*total + 0.1*peak + 0.1*words
		default:
			score = freq
		}
		out = append(out, Score{Candidate: *c, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Best returns the top-ranked candidate name, or "" when nothing was
// observed.
func (a *Aggregator) Best() string {
	if ranked := a.Ranked(1, 0); len(ranked) > 0 {
		return ranked[0].Name
	}
	return ""
}

// Names returns up to n ranked candidate names seen at least minFreq times.
func (a *Aggregator) Names(n, minFreq int) []string {
	ranked := a.Ranked(n, minFreq)
	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}
	return names
}

// Statistics summarizes what an Aggregator has accumulated.
type Statistics struct {
	Candidates    int
	Observations  int
	TotalRetweets int
	Top           string
	Frequencies   map[string]int
}

// Stats returns summary statistics for the slot.
func (a *Aggregator) Stats() Statistics {
	s := Statistics{
		Candidates:  len(a.candidates),
		Top:         a.Best(),
		Frequencies: make(map[string]int, len(a.candidates)),
	}
	for name, c := range a.candidates {
		s.Observations += c.Frequency
		s.TotalRetweets += c.TotalRetweets
		s.Frequencies[name] = c.Frequency
	}
	return s
}

// Multi fans observations out to one Aggregator per role (hosts, one award's
// winner, a red-carpet category) under a shared strategy.
type Multi struct {
	strategy Strategy
	roles    map[string]*Aggregator
}

// NewMulti returns a Multi with an empty aggregator for each named role.
// Unknown roles are created on first use.
func NewMulti(strategy Strategy, roles ...string) *Multi {
	m := &Multi{strategy: strategy, roles: make(map[string]*Aggregator, len(roles))}
	for _, role := range roles {
		m.roles[role] = New(strategy)
	}
	return m
}

// Role returns the aggregator for one role, creating it if needed.
func (m *Multi) Role(role string) *Aggregator {
	a, ok := m.roles[role]
	if !ok {
		a = New(m.strategy)
		m.roles[role] = a
	}
	return a
}

// Observe records one mention of name under a role.
func (m *Multi) Observe(role, name string, retweets int) {
	m.Role(role).Observe(name, retweets)
}

// Results returns up to n ranked names per role, dropping candidates seen
// fewer than minFreq times.
func (m *Multi) Results(n, minFreq int) map[string][]string {
	out := make(map[string][]string, len(m.roles))
	for role, a := range m.roles {
		out[role] = a.Names(n, minFreq)
	}
	return out
}

// Best returns the single top name per role, "" for roles with no
// qualifying candidate.
func (m *Multi) Best(minFreq int) map[string]string {
	out := make(map[string]string, len(m.roles))
	for role, a := range m.roles {
		name := ""
		if ranked := a.Ranked(1, minFreq); len(ranked) > 0 {
			name = ranked[0].Name
		}
		out[role] = name
	}
	return out
}
