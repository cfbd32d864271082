// Package extract implements the entity extractors: hosts, award discovery,
// winners, nominees, presenters and the extra crowd-voted categories.
//
// Extractors share one shape: pattern-match the relevant tweets, pull
// candidate entities (regex captures and PERSON entities), count normalized
// mentions, then pick the top candidates above a confidence threshold.
package extract

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

// Candidate is a counted mention.
type Candidate struct {
	Name  string
	Count int
}

// Counter counts normalized mentions.
type Counter map[string]int

// Add increments a mention. Empty names are ignored.
func (c Counter) Add(name string) {
	if name != "" {
		c[name]++
	}
}

// AddAll increments every mention in the list.
func (c Counter) AddAll(names []string) {
	for _, n := range names {
		c.Add(n)
	}
}

// MostCommon returns candidates ordered by count descending. Ties break on
// name so output is deterministic. n <= 0 returns all.
func (c Counter) MostCommon(n int) []Candidate {
	out := make([]Candidate, 0, len(c))
	for name, count := range c {
		out = append(out, Candidate{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopNames returns up to n names with at least minCount mentions.
func (c Counter) TopNames(n, minCount int) []string {
	var names []string
	for _, cand := range c.MostCommon(0) {
		if minCount > 0 && cand.Count < minCount {
			continue
		}
		names = append(names, cand.Name)
		if n > 0 && len(names) == n {
			break
		}
	}
	return names
}

// wordOverlap returns |a ∩ b| / |b| over whitespace-split word sets.
func wordOverlap(a, b string) float64 {
	bWords := strings.Fields(b)
	if len(bWords) == 0 {
		return 0
	}
	aSet := make(map[string]bool)
	for _, w := range strings.Fields(a) {
		aSet[w] = true
	}
	overlap := 0
	for _, w := range bWords {
		if aSet[w] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(bWords))
}

// matchAwards returns the template awards a tweet refers to. Detected award
// phrases (from the group filter) are mapped onto templates first; without
// them the whole tweet text is matched by word overlap. The 0.5 threshold
// keeps "best actor in a drama" off the comedy categories.
func matchAwards(t tweet.Tweet, awards []string, tweetAwards map[int64][]string) []string {
	var matched []string
	seen := make(map[string]bool)

	if phrases, ok := tweetAwards[t.ID]; ok {
		for _, phrase := range phrases {
			detected := nlp.Normalize(phrase)
			best, bestOverlap := "", 0.0
			for _, award := range awards {
				if ov := wordOverlap(detected, award); ov > bestOverlap {
					bestOverlap, best = ov, award
				}
			}
			if best != "" && bestOverlap >= 0.5 && !seen[best] {
				seen[best] = true
				matched = append(matched, best)
			}
		}
	}

	if len(matched) == 0 {
		text := nlp.Normalize(t.Text)
		for _, award := range awards {
			if wordOverlap(text, award) >= 0.5 && !seen[award] {
				seen[award] = true
				matched = append(matched, award)
			}
		}
	}

	return matched
}

// forEach runs fn over tweets with a bounded worker pool. fn must do its own
// locking around shared state. workers <= 1 degrades to a plain loop.
func forEach(ctx context.Context, tweets []tweet.Tweet, workers int, fn func(tweet.Tweet)) error {
	if workers <= 1 {
		for _, t := range tweets {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(t)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tweets {
		if err := ctx.Err(); err != nil {
			break
		}
		t := t
		g.Go(func() error {
			fn(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// lockedCounter is a Counter safe for forEach workers.
type lockedCounter struct {
	mu sync.Mutex
	c  Counter
}

func newLockedCounter() *lockedCounter {
	return &lockedCounter{c: make(Counter)}
}

func (l *lockedCounter) AddAll(names []string) {
	l.mu.Lock()
	l.c.AddAll(names)
	l.mu.Unlock()
}
