package nlp

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Tina Fey", "tina fey"},
		{"diacritics", "Beyoncé", "beyonce"},
		{"punctuation", "Argo!!! wins?", "argo wins"},
		{"keeps hyphen and dot", "Cecil B. Demille - Award", "cecil b. demille - award"},
		{"collapses whitespace", "  best   motion\tpicture ", "best motion picture"},
		{"empty", "", ""},
		{"only punctuation", "!?!,", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("argo", "argo"); got != 1 {
		t.Errorf("Similarity(identical) = %v, want 1", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Errorf("Similarity(empty, empty) = %v, want 1", got)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Errorf("Similarity(disjoint) = %v, want 0", got)
	}

	near := Similarity("best television series drama", "best television series - drama")
	far := Similarity("best television series drama", "best original song")
	if near <= far {
		t.Errorf("near variant (%v) should score above a different award (%v)", near, far)
	}
	if near < 0.8 {
		t.Errorf("near variant scored %v, want >= 0.8", near)
	}
	if far < 0 || far > 1 {
		t.Errorf("similarity %v out of range", far)
	}
}
