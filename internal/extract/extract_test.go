package extract

import (
	"context"
	"reflect"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"

	"redcarpet/internal/tweet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCounterMostCommon(t *testing.T) {
	c := make(Counter)
	c.AddAll([]string{"argo", "lincoln", "argo", "argo", "lincoln", "amour"})
	c.Add("")

	got := c.MostCommon(2)
	want := []Candidate{{Name: "argo", Count: 3}, {Name: "lincoln", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MostCommon(2) = %v, want %v", got, want)
	}
}

func TestCounterTiesBreakOnName(t *testing.T) {
	c := Counter{"zebra": 2, "apple": 2, "mango": 2}
	got := c.MostCommon(0)
	want := []Candidate{{"apple", 2}, {"mango", 2}, {"zebra", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MostCommon(0) = %v, want %v", got, want)
	}
}

func TestCounterTopNames(t *testing.T) {
	c := Counter{"argo": 5, "lincoln": 3, "amour": 1}

	if got := c.TopNames(2, 0); !reflect.DeepEqual(got, []string{"argo", "lincoln"}) {
		t.Errorf("TopNames(2, 0) = %v", got)
	}
	if got := c.TopNames(0, 3); !reflect.DeepEqual(got, []string{"argo", "lincoln"}) {
		t.Errorf("TopNames(0, 3) = %v", got)
	}
	if got := c.TopNames(0, 10); got != nil {
		t.Errorf("TopNames above all counts = %v, want none", got)
	}
}

func TestWordOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"best motion picture drama", "best motion picture drama", 1},
		{"argo wins best picture", "best motion picture", 2.0 / 3.0},
		{"nothing shared", "best director", 0},
		{"anything", "", 0},
	}
	for _, tt := range tests {
		if got := wordOverlap(tt.a, tt.b); got != tt.want {
			t.Errorf("wordOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchAwardsFromDetectedPhrases(t *testing.T) {
	awards := []string{
		"best motion picture - drama",
		"best original song - motion picture",
	}
	tweetAwards := map[int64][]string{
		1: {"best motion picture drama"},
	}

	got := matchAwards(tweet.Tweet{ID: 1, Text: "irrelevant"}, awards, tweetAwards)
	want := []string{"best motion picture - drama"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("matchAwards = %v, want %v", got, want)
	}
}

func TestMatchAwardsFallsBackToText(t *testing.T) {
	awards := []string{
		"best motion picture - drama",
		"best original song - motion picture",
	}

	tw := tweet.Tweet{ID: 2, Text: "that was the best original song ever"}
	got := matchAwards(tw, awards, nil)
	want := []string{"best original song - motion picture"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("matchAwards = %v, want %v", got, want)
	}
}

func TestMatchAwardsNoMatch(t *testing.T) {
	got := matchAwards(tweet.Tweet{ID: 3, Text: "what a show"}, []string{"best director - motion picture"}, nil)
	if len(got) != 0 {
		t.Errorf("matchAwards = %v, want none", got)
	}
}

func TestForEachVisitsEverything(t *testing.T) {
	tweets := make([]tweet.Tweet, 50)
	for i := range tweets {
		tweets[i] = tweet.Tweet{ID: int64(i)}
	}

	for _, workers := range []int{1, 4} {
		var visited atomic.Int64
		err := forEach(context.Background(), tweets, workers, func(tweet.Tweet) {
			visited.Add(1)
		})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if visited.Load() != int64(len(tweets)) {
			t.Errorf("workers=%d visited %d, want %d", workers, visited.Load(), len(tweets))
		}
	}
}

func TestForEachHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := forEach(ctx, []tweet.Tweet{{ID: 1}}, 1, func(tweet.Tweet) {
		t.Error("fn ran after cancellation")
	})
	if err == nil {
		t.Fatal("expected context error")
	}
}
