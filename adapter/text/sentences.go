package text

import (
	"strings"
	"unicode"
)

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits s after every '.', '!' or '?' that is followed by
// whitespace. Terminal punctuation stays with its sentence; the whitespace
// between sentences is dropped.
func SplitSentences(s string) []string {
	runes := []rune(s)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// FirstSentence returns the first sentence of s, or s trimmed when it has no
// sentence boundary
func FirstSentence(s string) string {
	sentences := SplitSentences(s)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}

// TrimTerminal removes trailing sentence punctuation
func TrimTerminal(s string) string {
	return strings.TrimRightFunc(s, isTerminal)
}
