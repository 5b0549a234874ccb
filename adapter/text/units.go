package text

import (
	"regexp"
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
)

// Arrow is the list glyph used on the short-form surface
const Arrow = "→"

var (
	// "- item", "• item", "→ item"; the glyphs need no trailing space
	bulletPattern = regexp.MustCompile(`^[ \t]*(?:-[ \t]+|[•→][ \t]*)(.*)$`)
	// "1. item"
	numberedPattern = regexp.MustCompile(`^[ \t]*\d+\.[ \t]+(.*)$`)
)

// ParseMarker classifies a single line. For bullet and numbered lines the
// returned body has the marker removed; otherwise the trimmed line is returned
// as a paragraph.
func ParseMarker(line string) (models.UnitKind, string) {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return models.KindBullet, strings.TrimSpace(m[1])
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		return models.KindNumbered, strings.TrimSpace(m[1])
	}
	return models.KindParagraph, strings.TrimSpace(line)
}

// SplitUnits breaks normalized text into units, one per non-blank line
func SplitUnits(s string) []models.ContentUnit {
	var units []models.ContentUnit
	for i, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind, body := ParseMarker(line)
		if body == "" {
			continue
		}
		units = append(units, models.ContentUnit{Kind: kind, Text: body, Line: i})
	}
	return units
}

// ExpandSentences splits paragraph units longer than threshold characters
// into sentence units. List items are left whole.
func ExpandSentences(units []models.ContentUnit, threshold int) []models.ContentUnit {
	out := make([]models.ContentUnit, 0, len(units))
	for _, u := range units {
		if u.Kind != models.KindParagraph || Len(u.Text) <= threshold {
			out = append(out, u)
			continue
		}
		for _, sentence := range SplitSentences(u.Text) {
			out = append(out, models.ContentUnit{Kind: models.KindSentence, Text: sentence, Line: u.Line})
		}
	}
	return out
}

// ListItems returns the bullet and numbered units in order
func ListItems(units []models.ContentUnit) []models.ContentUnit {
	var items []models.ContentUnit
	for _, u := range units {
		if u.Kind.IsListItem() {
			items = append(items, u)
		}
	}
	return items
}
