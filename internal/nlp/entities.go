package nlp

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"
)

// Token is one tagged token (Penn Treebank tags).
type Token struct {
	Text string
	Tag  string
}

// Entity labels prose emits that we care about.
const (
	LabelPerson = "PERSON"
	LabelPlace  = "GPE"
)

var (
	modelOnce sync.Once
	model     *prose.Model
)

// taggerModel returns the process-wide prose model. Building one decodes the
// embedded tagger and entity-extracter weights, which costs a sizable
// fraction of a second, so it happens exactly once. Tagging and chunking
// only read the weights, which keeps the shared model safe under the
// extraction worker pool.
func taggerModel() *prose.Model {
	modelOnce.Do(func() {
		seed, err := prose.NewDocument("golden globes", prose.WithSegmentation(false))
		if err == nil {
			model = seed.Model
		}
	})
	return model
}

// Persons extracts PERSON entities from text.
func Persons(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(taggerModel()),
		prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	var persons []string
	for _, ent := range doc.Entities() {
		if ent.Label == LabelPerson {
			persons = append(persons, ent.Text)
		}
	}
	return persons
}

// Entities extracts all named entities grouped by label.
func Entities(text string) map[string][]string {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(taggerModel()),
		prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	out := make(map[string][]string)
	for _, ent := range doc.Entities() {
		out[ent.Label] = append(out[ent.Label], ent.Text)
	}
	return out
}

// Tokens POS-tags the text.
func Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(taggerModel()),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}
	toks := doc.Tokens()
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}
