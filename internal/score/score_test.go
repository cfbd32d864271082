package score

import (
	"strings"
	"testing"

	"redcarpet/internal/results"
)

const answerKey = `{
	"hosts": ["tina fey", "amy poehler"],
	"award_data": {
		"best motion picture - drama": {
			"nominees": ["lincoln", "zero dark thirty"],
			"presenters": ["julia roberts"],
			"winner": "argo"
		},
		"cecil b. demille award": {
			"nominees": [],
			"presenters": ["robert downey jr"],
			"winner": "jodie foster"
		}
	}
}`

var gradedAwards = []string{"best motion picture - drama", "cecil b demille award"}

func perfectDocument() *results.Document {
	d := results.NewDocument("2013", gradedAwards)
	d.Hosts = []string{"tina fey", "amy poehler"}
	d.Discovered = []string{"best motion picture - drama", "cecil b demille award"}
	d.ByAward["best motion picture - drama"] = results.AwardResult{
		Winner:     "argo",
		Nominees:   []string{"lincoln", "zero dark thirty"},
		Presenters: []string{"julia roberts"},
	}
	d.ByAward["cecil b demille award"] = results.AwardResult{
		Winner:     "jodie foster",
		Presenters: []string{"robert downey jr"},
	}
	return d
}

func taskByName(t *testing.T, r *Report, name string) TaskScore {
	t.Helper()
	for _, task := range r.Tasks {
		if task.Name == name {
			return task
		}
	}
	t.Fatalf("no task %q in report", name)
	return TaskScore{}
}

func TestGradePerfectExtraction(t *testing.T) {
	report, err := Grade(perfectDocument(), []byte(answerKey))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	for _, name := range []string{"hosts", "winners", "nominees", "presenters"} {
		task := taskByName(t, report, name)
		if task.Completeness != 1 {
			t.Errorf("%s completeness = %v, want 1", name, task.Completeness)
		}
		if task.Spelling != 1 {
			t.Errorf("%s spelling = %v, want 1", name, task.Spelling)
		}
	}
	if total := report.Total(); total < 0.9 {
		t.Errorf("total = %v, want near 1", total)
	}
}

func TestGradeMissingWinner(t *testing.T) {
	d := perfectDocument()
	r := d.ByAward["best motion picture - drama"]
	r.Winner = ""
	d.ByAward["best motion picture - drama"] = r

	report, err := Grade(d, []byte(answerKey))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	winners := taskByName(t, report, "winners")
	if winners.Completeness != 0.5 {
		t.Errorf("winners completeness = %v, want 0.5", winners.Completeness)
	}
}

func TestGradeMisspelledHost(t *testing.T) {
	d := perfectDocument()
	d.Hosts = []string{"tina fay", "amy poehler"}

	report, err := Grade(d, []byte(answerKey))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	hosts := taskByName(t, report, "hosts")
	if hosts.Completeness != 1 {
		t.Errorf("hosts completeness = %v, want 1 (near-match counts)", hosts.Completeness)
	}
	if hosts.Spelling >= 1 {
		t.Errorf("hosts spelling = %v, want below 1", hosts.Spelling)
	}
}

func TestGradeBadAnswerKey(t *testing.T) {
	if _, err := Grade(perfectDocument(), []byte(`[]`)); err == nil {
		t.Fatal("expected error for non-object answers")
	}
	if _, err := Grade(perfectDocument(), []byte(`{"hosts": []}`)); err == nil {
		t.Fatal("expected error for answers without award_data")
	}
}

func TestTaskScore(t *testing.T) {
	task := TaskScore{Name: "x", Completeness: 0.5, Spelling: 0.9}
	if got := task.Score(); got != 0.45 {
		t.Errorf("Score = %v, want 0.45", got)
	}
}

func TestFormatReport(t *testing.T) {
	report, err := Grade(perfectDocument(), []byte(answerKey))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	out := FormatReport(report)

	for _, want := range []string{"Autograder results for 2013", "hosts", "winners", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
