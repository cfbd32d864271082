package results

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"redcarpet/internal/extract"
	"redcarpet/internal/nlp"
)

var testAwards = []string{
	nlp.CecilAward,
	"best motion picture - drama",
	"best performance by an actor in a motion picture - drama",
}

func sampleDocument() *Document {
	d := NewDocument("2013", testAwards)
	d.Hosts = []string{"tina fey", "amy poehler"}
	d.HostCandidates = []string{"tina fey", "amy poehler", "ricky gervais"}
	d.Discovered = []string{"best motion picture - drama", nlp.CecilAward}
	d.ByAward[nlp.CecilAward] = AwardResult{
		Winner:     "jodie foster",
		Presenters: []string{"robert downey jr"},
	}
	d.ByAward["best motion picture - drama"] = AwardResult{
		Winner:            "argo",
		WinnerCandidates:  []string{"argo", "lincoln"},
		Nominees:          []string{"lincoln", "zero dark thirty"},
		NomineeCandidates: []string{"lincoln", "zero dark thirty", "life of pi"},
		Presenters:        []string{"julia roberts"},
	}
	d.ByAward["best performance by an actor in a motion picture - drama"] = AwardResult{
		Winner: "daniel day-lewis",
	}
	for _, goal := range extract.Goals {
		d.Extras[goal] = ""
	}
	d.Extras[extract.GoalBestDressed] = "lucy liu"
	d.ExtraCandidates[extract.GoalBestDressed] = []string{"lucy liu", "kate hudson"}
	return d
}

func TestDocumentRoundTrip(t *testing.T) {
	d := sampleDocument()

	data, err := d.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	got, err := Parse("2013", testAwards, data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff(d.Flatten(), got.Flatten()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenKeys(t *testing.T) {
	flat := sampleDocument().Flatten()

	for _, key := range []string{"host", "host_candidates", "awards"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	for _, award := range testAwards {
		block, ok := flat[award].(map[string]any)
		if !ok {
			t.Fatalf("award %q is not a block", award)
		}
		for _, key := range []string{"winner", "winner_candidates", "nominees",
			"nominee_candidates", "presenters", "presenters_candidates"} {
			if _, ok := block[key]; !ok {
				t.Errorf("award %q missing key %q", award, key)
			}
		}
	}
	if flat["best dressed"] != "lucy liu" {
		t.Errorf("best dressed = %v", flat["best dressed"])
	}
	if _, ok := flat["best dressed_candidates"]; !ok {
		t.Error("missing best dressed_candidates")
	}
}

func TestValidateMissingBlock(t *testing.T) {
	d := sampleDocument()
	delete(d.ByAward, nlp.CecilAward)
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for missing award block")
	}
}

func TestValidateMissingExtra(t *testing.T) {
	d := sampleDocument()
	delete(d.Extras, extract.GoalWorstSpeech)
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for missing extra category")
	}
}

func TestValidateNoAwards(t *testing.T) {
	d := NewDocument("2013", nil)
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for empty award list")
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	if _, err := Parse("2013", testAwards, []byte(`[1, 2, 3]`)); err == nil {
		t.Fatal("expected error for non-object document")
	}
}

func TestEscapeKey(t *testing.T) {
	d := sampleDocument()
	data, err := d.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	got, err := Parse("2013", testAwards, data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// "cecil b demille award" has no dot, but award keys with dots must
	// survive the gjson path lookup.
	if got.ByAward[nlp.CecilAward].Winner != "jodie foster" {
		t.Errorf("cecil winner = %q", got.ByAward[nlp.CecilAward].Winner)
	}
	if !strings.Contains(string(data), "jodie foster") {
		t.Error("marshaled document lost the cecil block")
	}
}
