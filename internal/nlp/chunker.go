package nlp

import (
	"regexp"
	"strings"
)

var (
	// Fast path: "best <words> <category keyword>".
	awardRegex = regexp.MustCompile(`(?i)\bbest\s+[\w\s\-,]+?(?:actor|actress|picture|film|director|score|song|screenplay|series|feature|television|performance)`)

	cecilRegex = regexp.MustCompile(`(?i)\bcecil\s+b\.?\s+demille\s+award\b`)
)

// Award-phrase chunk tags: superlative start, then adjectives, nouns,
// prepositions, determiners and gerunds, mirroring the grammar
// {<RBS|JJS><VBG>?<JJ.*>*<NN.*>+<IN>?<DT>?...} used for discovery.
var chunkContinue = map[string]bool{
	"JJ": true, "JJR": true, "JJS": true,
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
	"IN": true, "DT": true, "VBG": true, "CD": true,
	"HYPH": true, ":": true,
}

// CecilAward is the one category that never matches the "best ..." grammar.
const CecilAward = "cecil b demille award"

// AwardPhrases extracts candidate award phrases from a tweet. POS chunking
// runs first; the regex fallback catches phrasings the tagger mangles
// (tweets are hard on taggers).
func AwardPhrases(text string) []string {
	var phrases []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = Normalize(p)
		if len(p) <= 10 || len(p) >= 100 || seen[p] {
			return
		}
		seen[p] = true
		phrases = append(phrases, p)
	}

	if cecilRegex.MatchString(text) {
		seen[CecilAward] = true
		phrases = append(phrases, CecilAward)
	}

	if toks, err := Tokens(text); err == nil {
		for i := 0; i < len(toks); i++ {
			if !strings.EqualFold(toks[i].Text, "best") {
				continue
			}
			j := i + 1
			for j < len(toks) && chunkContinue[toks[j].Tag] {
				j++
			}
			if j > i+1 {
				var words []string
				for _, t := range toks[i:j] {
					words = append(words, t.Text)
				}
				add(strings.Join(words, " "))
			}
			i = j
		}
	}

	for _, m := range awardRegex.FindAllString(text, -1) {
		add(m)
	}

	return phrases
}

// MentionsAward reports whether a tweet can possibly carry an award phrase,
// cheap enough to gate the chunker.
func MentionsAward(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "best") || strings.Contains(lower, "cecil")
}
