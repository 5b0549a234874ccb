// Package text provides the normalization and unit-splitting steps that every
// adaptation surface starts from
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineEndingPattern = regexp.MustCompile(`\r\n|\r`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
	spaceRunPattern   = regexp.MustCompile(` {2,}`)
)

// Normalize unifies line endings, trims the text, keeps at most one blank
// line between paragraphs and collapses runs of spaces
func Normalize(s string) string {
	s = lineEndingPattern.ReplaceAllString(s, "\n")
	s = strings.TrimSpace(s)
	s = blankRunPattern.ReplaceAllString(s, "\n\n")
	s = spaceRunPattern.ReplaceAllString(s, " ")
	return s
}

// Len returns the length of s in characters
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to max characters, ending with "..." when it was cut
func Truncate(s string, max int) string {
	if Len(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}
