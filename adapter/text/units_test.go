package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tenebris-tech/x2post/adapter/models"
)

func TestParseMarker(t *testing.T) {
	tests := []struct {
		line string
		kind models.UnitKind
		body string
	}{
		{"- Saves time", models.KindBullet, "Saves time"},
		{"  -   Indented", models.KindBullet, "Indented"},
		{"• Bullet glyph", models.KindBullet, "Bullet glyph"},
		{"•Tight glyph", models.KindBullet, "Tight glyph"},
		{"→ Arrow", models.KindBullet, "Arrow"},
		{"1. First", models.KindNumbered, "First"},
		{"12. Twelfth", models.KindNumbered, "Twelfth"},
		{"-5 degrees outside", models.KindParagraph, "-5 degrees outside"},
		{"1.5 million users", models.KindParagraph, "1.5 million users"},
		{"Plain text", models.KindParagraph, "Plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, body := ParseMarker(tt.line)
			if kind != tt.kind || body != tt.body {
				t.Errorf("ParseMarker(%q) = (%v, %q), want (%v, %q)", tt.line, kind, body, tt.kind, tt.body)
			}
		})
	}
}

func TestSplitUnits(t *testing.T) {
	in := "Check out our new feature.\n\n- Saves time\n- Saves money\n\n1. Step one\n\nVisit us today"
	want := []models.ContentUnit{
		{Kind: models.KindParagraph, Text: "Check out our new feature.", Line: 0},
		{Kind: models.KindBullet, Text: "Saves time", Line: 2},
		{Kind: models.KindBullet, Text: "Saves money", Line: 3},
		{Kind: models.KindNumbered, Text: "Step one", Line: 5},
		{Kind: models.KindParagraph, Text: "Visit us today", Line: 7},
	}

	got := SplitUnits(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitUnits mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitUnitsSkipsEmptyMarkers(t *testing.T) {
	got := SplitUnits("•\n\n- \nreal")
	if len(got) != 1 || got[0].Text != "real" {
		t.Errorf("expected only the paragraph unit, got %+v", got)
	}
}

func TestExpandSentences(t *testing.T) {
	long := "This is the first sentence of a paragraph that runs long. Here is another one! And is this the third? Yes it is."
	units := []models.ContentUnit{
		{Kind: models.KindParagraph, Text: "Short paragraph. Stays whole."},
		{Kind: models.KindBullet, Text: long},
		{Kind: models.KindParagraph, Text: long, Line: 4},
	}

	got := ExpandSentences(units, 100)
	want := []models.ContentUnit{
		units[0],
		units[1],
		{Kind: models.KindSentence, Text: "This is the first sentence of a paragraph that runs long.", Line: 4},
		{Kind: models.KindSentence, Text: "Here is another one!", Line: 4},
		{Kind: models.KindSentence, Text: "And is this the third?", Line: 4},
		{Kind: models.KindSentence, Text: "Yes it is.", Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExpandSentences mismatch (-want +got):\n%s", diff)
	}
}

func TestListItems(t *testing.T) {
	units := SplitUnits("Intro\n- a\n2. b\nOutro")
	items := ListItems(units)
	if len(items) != 2 || items[0].Text != "a" || items[1].Text != "b" {
		t.Errorf("unexpected list items: %+v", items)
	}
}
