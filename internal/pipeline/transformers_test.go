package pipeline

import (
	"reflect"
	"testing"

	"redcarpet/internal/tweet"
)

func TestHashtagExtractor(t *testing.T) {
	tw := tweet.Tweet{Text: "Argo wins best picture #GoldenGlobes #gg"}
	HashtagExtractor{}.Process(&tw)

	if tw.Text != "Argo wins best picture" {
		t.Errorf("Text = %q", tw.Text)
	}
	want := []string{"#GoldenGlobes", "#gg"}
	if !reflect.DeepEqual(tw.HashTags, want) {
		t.Errorf("HashTags = %v, want %v", tw.HashTags, want)
	}
}

func TestHashtagExtractorKeepsEmbeddedTags(t *testing.T) {
	tw := tweet.Tweet{Text: "I wanna see #AmyPoehler win so bad"}
	HashtagExtractor{}.Process(&tw)

	if tw.Text != "I wanna see #AmyPoehler win so bad" {
		t.Errorf("embedded tag was stripped: %q", tw.Text)
	}
	if len(tw.HashTags) != 0 {
		t.Errorf("HashTags = %v, want none", tw.HashTags)
	}
}

func TestHashtagExtractorKeepText(t *testing.T) {
	tw := tweet.Tweet{Text: "what a night #gg"}
	HashtagExtractor{KeepText: true}.Process(&tw)

	if tw.Text != "what a night #gg" {
		t.Errorf("Text = %q", tw.Text)
	}
	if !reflect.DeepEqual(tw.HashTags, []string{"#gg"}) {
		t.Errorf("HashTags = %v", tw.HashTags)
	}
}

func TestMentionHumanizer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#golden_globes tonight", "Golden globes tonight"},
		{"so proud of @Stephen_Sondheim", "so proud of Stephen sondheim"},
		{"#ParksandRec forever", "Parksand rec forever"},
		{"no tags here", "no tags here"},
	}
	for _, tt := range tests {
		tw := tweet.Tweet{Text: tt.in}
		MentionHumanizer{}.Process(&tw)
		if tw.Text != tt.want {
			t.Errorf("humanize(%q) = %q, want %q", tt.in, tw.Text, tt.want)
		}
	}
}
