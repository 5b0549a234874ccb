package transform

import (
	"regexp"
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// MarkersToArrows rewrites bullet and numbered markers to the arrow glyph
type MarkersToArrows struct{}

// NewMarkersToArrows creates a new MarkersToArrows transformation
func NewMarkersToArrows() *MarkersToArrows {
	return &MarkersToArrows{}
}

// Transform rewrites list markers line by line
func (m *MarkersToArrows) Transform(draft *models.Draft) *models.Draft {
	lines := strings.Split(draft.Text, "\n")
	for i, line := range lines {
		kind, body := text.ParseMarker(line)
		if kind.IsListItem() && body != "" {
			lines[i] = text.Arrow + " " + body
		}
	}
	draft.Text = strings.Join(lines, "\n")
	return draft
}

var arrowLinePattern = regexp.MustCompile(`(?m)^[ \t]*→[ \t]*`)

// ArrowsToBullets turns short-form arrows back into bullet points
type ArrowsToBullets struct{}

// NewArrowsToBullets creates a new ArrowsToBullets transformation
func NewArrowsToBullets() *ArrowsToBullets {
	return &ArrowsToBullets{}
}

// Transform rewrites leading arrows
func (a *ArrowsToBullets) Transform(draft *models.Draft) *models.Draft {
	draft.Text = arrowLinePattern.ReplaceAllString(draft.Text, "• ")
	return draft
}
