package extract

import (
	"reflect"
	"testing"

	"redcarpet/internal/nlp"
	"redcarpet/internal/tweet"
)

func TestCanonicalizeAward(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"best tv series drama", "best television series - drama"},
		{"Best Mini Series", "best mini-series"},
		{"best miniseries", "best mini-series"},
		{"best supporting actor", "best performance by an actor in a supporting role"},
		{"best actress tv series drama", "best performance by an actress television series - drama"},
		{"best director", "best director - motion picture"},
		{"best motion picture musical or comedy", "best motion picture - comedy or musical"},
		{"Cecil B. DeMille award for lifetime achievement", nlp.CecilAward},
		{"best foreign language film", "best foreign language film"},
	}
	for _, tt := range tests {
		if got := CanonicalizeAward(tt.in); got != tt.want {
			t.Errorf("CanonicalizeAward(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAwardExtractorClustersVariants(t *testing.T) {
	tweets := []tweet.Tweet{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6},
	}
	tweetAwards := map[int64][]string{
		1: {"best television series drama"},
		2: {"best television series drama"},
		3: {"best television series - drama"},
		4: {"best television series - drama"},
		5: {"best original song"},
		6: {"best original song"},
	}

	e := NewAwardExtractor(2, 0.8, 10)
	awards := e.Extract(tweets, tweetAwards)

	// The two drama phrasings canonicalize and cluster into one award.
	if len(awards) != 2 {
		t.Fatalf("got %d awards, want 2: %v", len(awards), awards)
	}
	if awards[0] != "best television series - drama" {
		t.Errorf("top award = %q, want the merged drama category", awards[0])
	}
}

func TestAwardExtractorMinMentions(t *testing.T) {
	tweets := []tweet.Tweet{{ID: 1}, {ID: 2}}
	tweetAwards := map[int64][]string{
		1: {"best animated feature film"},
		2: {"best animated feature film", "best foreign language film"},
	}

	e := NewAwardExtractor(2, 0.8, 10)
	awards := e.Extract(tweets, tweetAwards)

	if !reflect.DeepEqual(awards, []string{"best animated feature film"}) {
		t.Errorf("awards = %v, want only the twice-mentioned category", awards)
	}
}

func TestAwardExtractorCandidates(t *testing.T) {
	tweets := []tweet.Tweet{{ID: 1}}
	tweetAwards := map[int64][]string{1: {"best original score"}}

	e := NewAwardExtractor(1, 0.8, 10)
	e.Extract(tweets, tweetAwards)

	if got := e.Candidates(5); len(got) != 1 {
		t.Errorf("Candidates = %v, want one entry", got)
	}
}

func TestSortAwards(t *testing.T) {
	in := []string{
		"best motion picture - drama",
		nlp.CecilAward,
		"best animated feature film",
	}
	got := SortAwards(in)
	want := []string{
		nlp.CecilAward,
		"best animated feature film",
		"best motion picture - drama",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortAwards = %v, want %v", got, want)
	}
	if in[0] == nlp.CecilAward {
		t.Error("SortAwards mutated its input")
	}
}
