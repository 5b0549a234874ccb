package metadata

import (
	"strings"

	"github.com/tenebris-tech/x2post/adapter/text"
)

// Sentences returns the sentences of content in reading order. Each line is
// its own boundary, list markers are dropped.
func Sentences(content string) []string {
	var sentences []string
	for _, u := range text.SplitUnits(text.Normalize(content)) {
		sentences = append(sentences, text.SplitSentences(u.Text)...)
	}
	return sentences
}

// Summary joins the first two sentences with ". ", ending with a period, and
// cuts the result to max characters
func Summary(content string, max int) string {
	var parts []string
	for _, s := range Sentences(content) {
		if s = strings.TrimSpace(text.TrimTerminal(s)); s != "" {
			parts = append(parts, s)
		}
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return text.Truncate(strings.Join(parts, ". ")+".", max)
}
