// Package pipeline implements the composable tweet-processing pipeline:
// cleaners normalize text, filters keep or reject tweets, transformers
// rewrite tweet fields. Processors run in order and a rejecting filter stops
// the chain for that tweet.
package pipeline

import (
	"redcarpet/internal/logging"
	"redcarpet/internal/tweet"
)

// Processor is a single pipeline stage. Process may mutate the tweet in
// place; returning false rejects the tweet and stops the chain.
type Processor interface {
	// Name identifies the stage in logs.
	Name() string

	// Process runs the stage. keep=false drops the tweet.
	Process(t *tweet.Tweet) (keep bool)
}

// Pipeline applies processors in sequence.
type Pipeline struct {
	procs []Processor
}

// New builds a pipeline from the given stages.
func New(procs ...Processor) *Pipeline {
	return &Pipeline{procs: procs}
}

// Add appends a stage and returns the pipeline for chaining.
func (p *Pipeline) Add(proc Processor) *Pipeline {
	p.procs = append(p.procs, proc)
	return p
}

// Join returns a new pipeline running p's stages followed by other's.
func (p *Pipeline) Join(other *Pipeline) *Pipeline {
	procs := make([]Processor, 0, len(p.procs)+len(other.procs))
	procs = append(procs, p.procs...)
	procs = append(procs, other.procs...)
	return &Pipeline{procs: procs}
}

// Apply runs every stage against the tweet. It returns false as soon as a
// filter rejects.
func (p *Pipeline) Apply(t *tweet.Tweet) bool {
	for _, proc := range p.procs {
		if !proc.Process(t) {
			logging.Get(logging.CategoryPipeline).Debug("tweet %d rejected by %s", t.ID, proc.Name())
			return false
		}
	}
	return true
}

// Len reports the number of stages.
func (p *Pipeline) Len() int { return len(p.procs) }
