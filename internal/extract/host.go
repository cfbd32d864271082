package extract

import (
	"context"
	"regexp"
	"strings"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

var hostPattern = regexp.MustCompile(`(?i)\bhost(?:s|ed|ing)?\b|\bemcee[sd]?\b`)

// HostExtractor finds the ceremony hosts from host-group tweets. Hosts are
// the people most often named alongside hosting language; a ceremony almost
// always has one or two.
type HostExtractor struct {
	// MinMentions is the count a person needs before they are believed.
	MinMentions int
	// TopN caps how many hosts are returned.
	TopN int
	// Workers bounds the named-entity recognition pool.
	Workers int

	counts Counter
}

// NewHostExtractor returns a HostExtractor with the given thresholds.
func NewHostExtractor(minMentions, topN, workers int) *HostExtractor {
	return &HostExtractor{MinMentions: minMentions, TopN: topN, Workers: workers}
}

// Extract returns the hosts found in tweets, most mentioned first.
func (e *HostExtractor) Extract(ctx context.Context, tweets []tweet.Tweet) ([]string, error) {
	defer logging.StartTimer(logging.CategoryExtract, "extract hosts").Stop()

	counts := newLockedCounter()
	err := forEach(ctx, tweets, e.Workers, func(t tweet.Tweet) {
		if !hostPattern.MatchString(t.Text) {
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
		counts.AddAll(names)
	})
	if err != nil {
		return nil, err
	}
	e.counts = counts.c

	hosts := e.counts.TopNames(e.TopN, e.MinMentions)
	logging.Extract("found %d hosts from %d candidates", len(hosts), len(e.counts))
	return hosts, nil
}

// Candidates returns the top n host candidates seen during Extract,
// regardless of the mention threshold.
func (e *HostExtractor) Candidates(n int) []string {
	return e.counts.TopNames(n, 0)
}

// jointHostPattern matches "X and Y host ..." phrasing so co-hosts named in
// one breath both get credit even when entity recognition splits them.
func splitJointNames(s string) []string {
	parts := strings.Split(s, " and ")
	if len(parts) == 1 {
		return []string{s}
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
