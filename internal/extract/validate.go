package extract

import (
	"strings"
	"unicode"

	"redcarpet/internal/nlp"
)

// EntityType classifies what kind of entity an award's winner should be.
type EntityType string

const (
	// EntityPerson covers acting, directing and lifetime achievement awards.
	EntityPerson EntityType = "person"
	// EntityWork covers film, series, song and score awards.
	EntityWork EntityType = "work"
)

var personAwardKeywords = []string{
	"actor", "actress", "director", "demille", "performance by",
}

// ExpectedType returns the entity type an award's winner should have,
// judged from the award wording.
func ExpectedType(award string) EntityType {
	a := strings.ToLower(award)
	for _, kw := range personAwardKeywords {
		if strings.Contains(a, kw) {
			return EntityPerson
		}
	}
	return EntityWork
}

// Words that never start a person's name. Candidates beginning with one are
// regex captures that grabbed too much context.
var nonNameWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "for": true,
	"best": true, "golden": true, "globes": true, "globe": true,
	"award": true, "awards": true, "congrats": true, "congratulations": true,
	"rt": true, "just": true, "finally": true, "omg": true, "so": true,
	"watch": true, "watching": true, "tonight": true, "winner": true,
}

var commonFirstNames = map[string]bool{
	"adele": true, "amy": true, "anne": true, "ben": true, "bill": true,
	"bradley": true, "claire": true, "damian": true, "daniel": true,
	"don": true, "ed": true, "hugh": true, "jennifer": true, "jessica": true,
	"jodie": true, "julianne": true, "kevin": true, "lena": true,
	"maggie": true, "tina": true, "quentin": true, "christoph": true,
	"michael": true, "julia": true, "kate": true, "george": true,
	"robert": true, "will": true, "sacha": true, "jay": true, "kristen": true,
	"salma": true, "megan": true, "halle": true, "jason": true, "john": true,
	"steven": true, "kathryn": true, "david": true, "mel": true, "lucy": true,
	"paul": true, "amanda": true, "emily": true, "ewan": true, "nicole": true,
	"sylvester": true, "arnold": true, "jamie": true, "christian": true,
	"marion": true, "naomi": true, "rachel": true, "helen": true,
}

// LooksLikePerson reports whether a candidate span is plausibly a person's
// name: two or three alphabetic words, none from the non-name list.
// A recognized first name overrides the word-count limit for long names.
func LooksLikePerson(name string) bool {
	words := strings.Fields(strings.ToLower(name))
	if len(words) < 2 {
		return false
	}
	if nonNameWords[words[0]] {
		return false
	}
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '-' && r != '.' && r != '\'' {
				return false
			}
		}
	}
	if len(words) > 3 {
		return commonFirstNames[words[0]]
	}
	return true
}

// LooksLikeWork reports whether a candidate span is plausibly a film, show
// or song title. Titles are looser than names: digits and one-word titles
// are fine, but leading junk words and long tails are not.
func LooksLikeWork(name string) bool {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 || len(words) > 8 {
		return false
	}
	if nonNameWords[words[0]] && len(words) == 1 {
		return false
	}
	return true
}

// Validate reports whether a candidate fits the entity type expected for an
// award. Candidates are compared in normalized form.
func Validate(candidate, award string) bool {
	if nlp.Normalize(candidate) == "" {
		return false
	}
	if ExpectedType(award) == EntityPerson {
		return LooksLikePerson(candidate)
	}
	return LooksLikeWork(candidate)
}
