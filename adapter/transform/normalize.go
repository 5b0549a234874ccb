package transform

import (
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// Normalize collapses whitespace runs
type Normalize struct{}

// NewNormalize creates a new Normalize transformation
func NewNormalize() *Normalize {
	return &Normalize{}
}

// Transform normalizes the draft text
func (n *Normalize) Transform(draft *models.Draft) *models.Draft {
	draft.Text = text.Normalize(draft.Text)
	return draft
}

// SplitUnits fills the draft's units from its text
type SplitUnits struct {
	// SentenceThreshold splits longer paragraphs into sentences; 0 disables
	SentenceThreshold int
}

// NewSplitUnits creates a new SplitUnits transformation
func NewSplitUnits(sentenceThreshold int) *SplitUnits {
	return &SplitUnits{SentenceThreshold: sentenceThreshold}
}

// Transform splits the draft into units
func (s *SplitUnits) Transform(draft *models.Draft) *models.Draft {
	draft.Units = text.SplitUnits(draft.Text)
	if s.SentenceThreshold > 0 {
		draft.Units = text.ExpandSentences(draft.Units, s.SentenceThreshold)
	}
	return draft
}

// FormatParagraphs rejoins paragraphs with exactly one blank line between them
type FormatParagraphs struct{}

// NewFormatParagraphs creates a new FormatParagraphs transformation
func NewFormatParagraphs() *FormatParagraphs {
	return &FormatParagraphs{}
}

// Transform reassembles paragraphs
func (f *FormatParagraphs) Transform(draft *models.Draft) *models.Draft {
	var paragraphs []string
	for _, p := range strings.Split(draft.Text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	draft.Text = strings.Join(paragraphs, "\n\n")
	return draft
}
