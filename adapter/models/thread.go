package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ChunkJoiner joins the parts of a segment
const ChunkJoiner = "\n\n"

// Segment is one capacity-bounded part of a thread.
// Parts are whole chunks, or one run of words when a chunk had to be split.
type Segment struct {
	Parts []string
	// Oversized is set when the segment holds a single word longer than the limit
	Oversized bool
}

// Text renders the segment without any numbering
func (s Segment) Text() string {
	return strings.Join(s.Parts, ChunkJoiner)
}

// Len returns the rendered length in characters
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text())
}

// Thread is an ordered sequence of sealed segments
type Thread struct {
	Segments []Segment
	// Capacity is the limit the thread was packed against
	Capacity int
	// NumberingThreshold is the segment count above which parts are numbered
	NumberingThreshold int
}

// Numbered reports whether segments carry an "i/ " position prefix
func (t Thread) Numbered() bool {
	return len(t.Segments) > t.NumberingThreshold
}

// Texts returns each segment's rendered text, numbered when the thread is long enough
func (t Thread) Texts() []string {
	texts := make([]string, len(t.Segments))
	numbered := t.Numbered()
	for i, seg := range t.Segments {
		if numbered {
			texts[i] = fmt.Sprintf("%d/ %s", i+1, seg.Text())
		} else {
			texts[i] = seg.Text()
		}
	}
	return texts
}

// Render joins the thread into a single post body.
// A single segment is returned on its own, cut to Capacity characters if it
// still exceeds it.
func (t Thread) Render(separator string) string {
	switch len(t.Segments) {
	case 0:
		return ""
	case 1:
		return truncateRunes(t.Segments[0].Text(), t.Capacity)
	}
	return strings.Join(t.Texts(), separator)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
