package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "No boundary here", []string{"No boundary here"}},
		{"mixed punctuation", "One. Two! Three? Four", []string{"One.", "Two!", "Three?", "Four"}},
		{"needs whitespace", "Version 1.5 is out.Really", []string{"Version 1.5 is out.Really"}},
		{"newline counts", "One.\nTwo.", []string{"One.", "Two."}},
		{"trailing punctuation", "Done.", []string{"Done."}},
		{"ellipsis", "Wait... what? Ok", []string{"Wait...", "what?", "Ok"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitSentences(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestFirstSentence(t *testing.T) {
	if got := FirstSentence("Hello there. General Kenobi."); got != "Hello there." {
		t.Errorf("got %q", got)
	}
	if got := FirstSentence(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestTrimTerminal(t *testing.T) {
	if got := TrimTerminal("Really?!."); got != "Really" {
		t.Errorf("got %q", got)
	}
}
