package transform

import (
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// BreakLongLines puts each sentence of a long line on its own line.
// Only whitespace is replaced, so the text never grows.
type BreakLongLines struct {
	Threshold int
}

// NewBreakLongLines creates a new BreakLongLines transformation
func NewBreakLongLines(threshold int) *BreakLongLines {
	return &BreakLongLines{Threshold: threshold}
}

// Transform breaks long lines at sentence boundaries
func (b *BreakLongLines) Transform(draft *models.Draft) *models.Draft {
	lines := strings.Split(draft.Text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if text.Len(line) <= b.Threshold {
			out = append(out, line)
			continue
		}
		out = append(out, text.SplitSentences(line)...)
	}
	draft.Text = strings.Join(out, "\n")
	return draft
}
