// Package transform provides the per-platform rewriting pipelines
package transform

import (
	"github.com/tenebris-tech/x2post/adapter/models"
)

// Transformation is the interface for pipeline steps
type Transformation interface {
	Transform(draft *models.Draft) *models.Draft
}

// Pipeline runs its transformations in sequence. Stage order matters: later
// stages rely on the markup earlier ones produce.
type Pipeline struct {
	transformations []Transformation
}

// NewPipeline creates a pipeline from the given stages
func NewPipeline(transformations ...Transformation) *Pipeline {
	return &Pipeline{transformations: transformations}
}

// Transform runs all stages over a fresh draft of content
func (p *Pipeline) Transform(content string) *models.Draft {
	draft := &models.Draft{Text: content}
	for _, t := range p.transformations {
		draft = t.Transform(draft)
	}
	return draft
}

// Len returns the number of stages
func (p *Pipeline) Len() int {
	return len(p.transformations)
}
