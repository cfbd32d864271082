// Package score grades extracted results against a known-good answers file.
// Each task (hosts, awards, winners, nominees, presenters) gets two marks:
// completeness, how much of the answer set was found at all, and spelling,
// how closely the found names match the official ones.
package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
	"redcarpet/internal/results"
)

// matchThreshold is the similarity at which an extracted name counts as a
// hit for completeness purposes.
const matchThreshold = 0.8

// TaskScore grades one extraction task.
type TaskScore struct {
	Name         string
	Completeness float64
	Spelling     float64
}

// Score is the task's single mark, completeness discounted by spelling.
func (t TaskScore) Score() float64 {
	return t.Completeness * t.Spelling
}

// Report is a full grading run.
type Report struct {
	Year  string
	Tasks []TaskScore
}

// Total averages the task scores.
func (r *Report) Total() float64 {
	if len(r.Tasks) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range r.Tasks {
		sum += t.Score()
	}
	return sum / float64(len(r.Tasks))
}

// answers is the parsed answer key: the hosts plus per-award nominees,
// presenters and winner.
type answers struct {
	hosts  []string
	awards map[string]awardAnswer
}

type awardAnswer struct {
	nominees   []string
	presenters []string
	winner     string
}

func parseAnswers(data []byte) (*answers, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("score: answers file is not a JSON object")
	}

	a := &answers{awards: make(map[string]awardAnswer)}
	for _, h := range root.Get("hosts").Array() {
		a.hosts = append(a.hosts, nlp.Normalize(h.String()))
	}
	root.Get("award_data").ForEach(func(key, value gjson.Result) bool {
		aa := awardAnswer{winner: nlp.Normalize(value.Get("winner").String())}
		for _, n := range value.Get("nominees").Array() {
			aa.nominees = append(aa.nominees, nlp.Normalize(n.String()))
		}
		for _, p := range value.Get("presenters").Array() {
			aa.presenters = append(aa.presenters, nlp.Normalize(p.String()))
		}
		a.awards[nlp.Normalize(key.String())] = aa
		return true
	})
	if len(a.awards) == 0 {
		return nil, fmt.Errorf("score: answers file has no award_data")
	}
	return a, nil
}

// Grade compares a results document against the answer key.
func Grade(doc *results.Document, answerData []byte) (*Report, error) {
	defer logging.StartTimer(logging.CategoryScore, "grade results").Stop()

	key, err := parseAnswers(answerData)
	if err != nil {
		return nil, err
	}

	answerAwards := make([]string, 0, len(key.awards))
	for award := range key.awards {
		answerAwards = append(answerAwards, award)
	}
	sort.Strings(answerAwards)

	report := &Report{Year: doc.Year}
	report.Tasks = append(report.Tasks, gradeList("hosts", key.hosts, doc.Hosts))
	report.Tasks = append(report.Tasks, gradeList("awards", answerAwards, doc.Discovered))

	// Per-award tasks grade against the extracted award whose name best
	// matches the official one, so a misspelled award name costs the
	// awards task but not every downstream task too.
	var winners, nominees, presenters []pair
	for _, award := range answerAwards {
		extracted := closestAward(award, doc.Awards)
		r := doc.ByAward[extracted]
		winners = append(winners, pair{want: []string{key.awards[award].winner}, got: []string{r.Winner}})
		nominees = append(nominees, pair{want: key.awards[award].nominees, got: r.Nominees})
		presenters = append(presenters, pair{want: key.awards[award].presenters, got: r.Presenters})
	}
	report.Tasks = append(report.Tasks, gradePairs("winners", winners))
	report.Tasks = append(report.Tasks, gradePairs("nominees", nominees))
	report.Tasks = append(report.Tasks, gradePairs("presenters", presenters))

	logging.Get(logging.CategoryScore).Info("graded year %s, total=%.3f", doc.Year, report.Total())
	return report, nil
}

type pair struct {
	want []string
	got  []string
}

// gradeList scores one answer list against one extracted list. Every
// answer item is matched to its most similar extracted item; similarity at
// or above the threshold counts toward completeness, and the similarities
// of the hits average into the spelling mark.
func gradeList(name string, want, got []string) TaskScore {
	return gradePairs(name, []pair{{want: want, got: got}})
}

func gradePairs(name string, pairs []pair) TaskScore {
	total, hits := 0, 0
	spelling, graded := 0.0, 0
	for _, p := range pairs {
		for _, w := range p.want {
			if w == "" {
				continue
			}
			total++
			best := 0.0
			for _, g := range p.got {
				if g == "" {
					continue
				}
				if sim := nlp.Similarity(w, g); sim > best {
					best = sim
				}
			}
			if best >= matchThreshold {
				hits++
				spelling += best
				graded++
			}
		}
	}

	t := TaskScore{Name: name}
	if total > 0 {
		t.Completeness = float64(hits) / float64(total)
	}
	if graded > 0 {
		t.Spelling = spelling / float64(graded)
	}
	return t
}

// closestAward maps an official award name onto the extracted award list.
func closestAward(award string, extracted []string) string {
	best, bestSim := "", 0.0
	for _, e := range extracted {
		if sim := nlp.Similarity(award, e); sim > bestSim {
			bestSim, best = sim, e
		}
	}
	return best
}

// FormatReport renders the report as an aligned text table.
func FormatReport(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Autograder results for %s\n\n", r.Year)
	fmt.Fprintf(&b, "%-12s %12s %10s %8s\n", "task", "completeness", "spelling", "score")
	for _, t := range r.Tasks {
		fmt.Fprintf(&b, "%-12s %12.3f %10.3f %8.3f\n", t.Name, t.Completeness, t.Spelling, t.Score())
	}
	fmt.Fprintf(&b, "\n%-12s %32.3f\n", "total", r.Total())
	return b.String()
}
