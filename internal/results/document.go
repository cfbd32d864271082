// Package results assembles, persists and reads back ceremony results.
//
// The canonical artifact is a flat JSON document: top-level keys for the
// hosts and the award list, one key per award holding that award's results,
// and one key per extra category. Flat keys keep the file directly usable
// by graders and scripts without walking nested structure.
package results

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"redcarpet/internal/extract"
)

// AwardResult holds everything extracted for one award.
type AwardResult struct {
	Winner              string   `json:"winner"`
	WinnerCandidates    []string `json:"winner_candidates"`
	Nominees            []string `json:"nominees"`
	NomineeCandidates   []string `json:"nominee_candidates"`
	Presenters          []string `json:"presenters"`
	PresenterCandidates []string `json:"presenters_candidates"`
}

// Document is the full result set for one ceremony. Discovered holds the
// award names mined from the tweets themselves and feeds the "awards" key;
// Awards holds the official award list the per-award blocks are keyed by.
// The two are separate tasks: discovery is graded on its own, while
// winners, nominees and presenters are always reported under the official
// names so readers can find them.
type Document struct {
	Year            string
	Hosts           []string
	HostCandidates  []string
	Discovered      []string
	Awards          []string
	ByAward         map[string]AwardResult
	Extras          map[string]string
	ExtraCandidates map[string][]string
}

// NewDocument returns an empty Document for a ceremony year keyed by the
// official award list.
func NewDocument(year string, awards []string) *Document {
	return &Document{
		Year:            year,
		Hosts:           []string{},
		HostCandidates:  []string{},
		Discovered:      []string{},
		Awards:          append([]string{}, awards...),
		ByAward:         make(map[string]AwardResult),
		Extras:          make(map[string]string),
		ExtraCandidates: make(map[string][]string),
	}
}

// Flatten renders the document as the flat key layout.
func (d *Document) Flatten() map[string]any {
	flat := map[string]any{
		"host":            orEmpty(d.Hosts),
		"host_candidates": orEmpty(d.HostCandidates),
		"awards":          orEmpty(d.Discovered),
	}
	for _, award := range d.Awards {
		r := d.ByAward[award]
		flat[award] = map[string]any{
			"winner":                r.Winner,
			"winner_candidates":     orEmpty(r.WinnerCandidates),
			"nominees":              orEmpty(r.Nominees),
			"nominee_candidates":    orEmpty(r.NomineeCandidates),
			"presenters":            orEmpty(r.Presenters),
			"presenters_candidates": orEmpty(r.PresenterCandidates),
		}
	}
	for goal, pick := range d.Extras {
		flat[goal] = pick
		flat[goal+"_candidates"] = orEmpty(d.ExtraCandidates[goal])
	}
	return flat
}

// MarshalIndent renders the flat document as indented JSON.
func (d *Document) MarshalIndent() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(d.Flatten(), "", "  ")
}

// Validate checks the document carries every key a grader expects: the
// host block, the award list, and a complete result block per award.
func (d *Document) Validate() error {
	if len(d.Awards) == 0 {
		return fmt.Errorf("results: no awards in document")
	}
	for _, award := range d.Awards {
		if _, ok := d.ByAward[award]; !ok {
			return fmt.Errorf("results: award %q listed but has no result block", award)
		}
	}
	for _, goal := range extract.Goals {
		if _, ok := d.Extras[goal]; !ok {
			return fmt.Errorf("results: extra category %q missing", goal)
		}
	}
	return nil
}

// Parse reads a flat results document back into a Document. awards names
// the block keys to look for; a missing block parses as an empty result.
func Parse(year string, awards []string, data []byte) (*Document, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("results: document is not a JSON object")
	}

	d := NewDocument(year, awards)
	d.Hosts = stringSlice(root.Get("host"))
	d.HostCandidates = stringSlice(root.Get("host_candidates"))
	d.Discovered = stringSlice(root.Get("awards"))

	for _, award := range d.Awards {
		block := root.Get(escapeKey(award))
		d.ByAward[award] = AwardResult{
			Winner:              block.Get("winner").String(),
			WinnerCandidates:    stringSlice(block.Get("winner_candidates")),
			Nominees:            stringSlice(block.Get("nominees")),
			NomineeCandidates:   stringSlice(block.Get("nominee_candidates")),
			Presenters:          stringSlice(block.Get("presenters")),
			PresenterCandidates: stringSlice(block.Get("presenters_candidates")),
		}
	}
	for _, goal := range extract.Goals {
		if v := root.Get(escapeKey(goal)); v.Exists() {
			d.Extras[goal] = v.String()
			d.ExtraCandidates[goal] = stringSlice(root.Get(escapeKey(goal + "_candidates")))
		}
	}
	return d, nil
}

// escapeKey protects literal dots in award names from gjson path syntax.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

func stringSlice(r gjson.Result) []string {
	out := []string{}
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
