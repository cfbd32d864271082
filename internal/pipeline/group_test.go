package pipeline

import (
	"testing"

	"redcarpet/internal/tweet"
)

func feed(g *GroupFilter, tweets ...tweet.Tweet) {
	for i := range tweets {
		g.Process(&tweets[i])
	}
}

func TestGroupFilterBuckets(t *testing.T) {
	g := NewGroupFilter()
	feed(g,
		tweet.Tweet{ID: 1, Text: "Tina Fey is hosting tonight"},
		tweet.Tweet{ID: 2, Text: "Argo won best motion picture"},
		tweet.Tweet{ID: 3, Text: "so many great nominees this year"},
		tweet.Tweet{ID: 4, Text: "Robert Downey Jr presenting now"},
		tweet.Tweet{ID: 5, Text: "that gown is stunning"},
		tweet.Tweet{ID: 6, Text: "totally unrelated chatter"},
	)

	tests := []struct {
		group string
		want  int
	}{
		{GroupHost, 1},
		{GroupWin, 1},
		{GroupNominee, 1},
		{GroupPresenter, 1},
		{GroupDress, 1},
	}
	for _, tt := range tests {
		if got := len(g.Group(tt.group)); got != tt.want {
			t.Errorf("group %s has %d tweets, want %d", tt.group, got, tt.want)
		}
	}
}

func TestGroupFilterMultiGroup(t *testing.T) {
	g := NewGroupFilter()
	feed(g, tweet.Tweet{ID: 1, Text: "the host just won an award, congrats"})

	if len(g.Group(GroupHost)) != 1 || len(g.Group(GroupWin)) != 1 {
		t.Errorf("tweet should land in both host and win groups: %v", g.Groups())
	}
}

func TestGroupFilterNeverRejects(t *testing.T) {
	g := NewGroupFilter()
	tw := tweet.Tweet{ID: 1, Text: "anything at all"}
	if !g.Process(&tw) {
		t.Error("GroupFilter rejected a tweet")
	}
}

func TestGroupFilterTweetAwards(t *testing.T) {
	g := NewGroupFilter()
	feed(g,
		tweet.Tweet{ID: 10, Text: "Argo wins Best Motion Picture at the globes"},
		tweet.Tweet{ID: 11, Text: "Jodie Foster gets the Cecil B. DeMille Award"},
		tweet.Tweet{ID: 12, Text: "no awards mentioned"},
	)

	aw := g.TweetAwards()
	if len(aw[10]) == 0 {
		t.Errorf("tweet 10 should have a detected award phrase: %v", aw)
	}
	found := false
	for _, p := range aw[11] {
		if p == "cecil b demille award" {
			found = true
		}
	}
	if !found {
		t.Errorf("tweet 11 phrases = %v, want cecil b demille award", aw[11])
	}
	if _, ok := aw[12]; ok {
		t.Errorf("tweet 12 should have no phrases: %v", aw[12])
	}
}
