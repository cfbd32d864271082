package results

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNotExtracted is returned when results are requested before the
// extraction has produced its JSON file.
var ErrNotExtracted = errors.New("results not found, run the extract command first")

// Reader reads extracted results back from disk, parsing the JSON file once
// and serving every accessor from the cached document.
type Reader struct {
	path   string
	year   string
	awards []string

	mu  sync.Mutex
	doc *Document
}

// OpenReader returns a Reader over the results file at path. awards is the
// official award list the per-award blocks are keyed by.
func OpenReader(path, year string, awards []string) *Reader {
	return &Reader{path: path, year: year, awards: awards}
}

func (r *Reader) load() (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc != nil {
		return r.doc, nil
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", r.path, ErrNotExtracted)
	}
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", r.path, err)
	}
	doc, err := Parse(r.year, r.awards, data)
	if err != nil {
		return nil, err
	}
	r.doc = doc
	return r.doc, nil
}

// Invalidate drops the cached document so the next accessor rereads disk.
func (r *Reader) Invalidate() {
	r.mu.Lock()
	r.doc = nil
	r.mu.Unlock()
}

// Document returns the full cached document.
func (r *Reader) Document() (*Document, error) {
	return r.load()
}

// Hosts returns the ceremony hosts.
func (r *Reader) Hosts() ([]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Hosts, nil
}

// Awards returns the award names discovered from the tweets.
func (r *Reader) Awards() ([]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Discovered, nil
}

// Winners returns each award's winner.
func (r *Reader) Winners() (map[string]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(doc.Awards))
	for _, award := range doc.Awards {
		out[award] = doc.ByAward[award].Winner
	}
	return out, nil
}

// Nominees returns each award's nominees.
func (r *Reader) Nominees() (map[string][]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(doc.Awards))
	for _, award := range doc.Awards {
		out[award] = doc.ByAward[award].Nominees
	}
	return out, nil
}

// Presenters returns each award's presenters.
func (r *Reader) Presenters() (map[string][]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(doc.Awards))
	for _, award := range doc.Awards {
		out[award] = doc.ByAward[award].Presenters
	}
	return out, nil
}

// Extras returns the crowd-voted extra categories.
func (r *Reader) Extras() (map[string]string, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Extras, nil
}
