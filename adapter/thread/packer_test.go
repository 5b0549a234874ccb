package thread

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenebris-tech/x2post/adapter/models"
)

// words builds a paragraph of n distinct words with no sentence punctuation
func words(n int) string {
	ws := make([]string, n)
	for i := range ws {
		ws[i] = fmt.Sprintf("word%03d", i)
	}
	return strings.Join(ws, " ")
}

func exactly(n int, fill byte) string {
	return strings.Repeat(string(fill), n)
}

// rejoinWords flattens a thread back into its word sequence
func rejoinWords(th models.Thread) []string {
	var out []string
	for _, seg := range th.Segments {
		out = append(out, strings.Fields(seg.Text())...)
	}
	return out
}

func TestNewPackerDefaults(t *testing.T) {
	p := NewPacker(nil)
	assert.Equal(t, 280, p.Capacity)
	assert.Equal(t, 5, p.WordHeadroom)
	assert.Equal(t, 3, p.NumberingThreshold)
}

func TestChunks(t *testing.T) {
	got := Chunks("  a \n\n\n\n b\nc \n\n  \n\n d")
	assert.Equal(t, []string{"a", "b\nc", "d"}, got)
	assert.Empty(t, Chunks(" \n\n "))
}

func TestPackSingleSegment(t *testing.T) {
	p := NewPacker(nil)
	th := p.Pack([]string{"one", "two", "three"})
	require.Len(t, th.Segments, 1)
	assert.Equal(t, "one\n\ntwo\n\nthree", th.Render(DefaultSeparator))
	assert.False(t, th.Numbered())
}

func TestPackBoundaryIsInclusive(t *testing.T) {
	p := NewPacker(nil)
	a := exactly(139, 'a')
	b := exactly(139, 'b') // 139 + 2 + 139 = 280
	th := p.Pack([]string{a, b})
	require.Len(t, th.Segments, 1, "a chunk that fits exactly at capacity must be kept")
	assert.Equal(t, 280, th.Segments[0].Len())

	th = p.Pack([]string{a, exactly(140, 'b')})
	require.Len(t, th.Segments, 2)
	assert.Equal(t, []string{a}, th.Segments[0].Parts)
}

func TestPackSkipsEmptyChunks(t *testing.T) {
	p := NewPacker(nil)
	th := p.Pack([]string{"", "  ", "x", "\n"})
	require.Len(t, th.Segments, 1)
	assert.Equal(t, "x", th.Segments[0].Text())

	assert.Empty(t, p.Pack(nil).Segments)
	assert.Equal(t, "", p.Pack([]string{" "}).Render(DefaultSeparator))
}

func TestPackWordFallback(t *testing.T) {
	p := NewPacker(nil)
	para := words(112) // 112*8-1 = 895 characters
	require.Greater(t, utf8.RuneCountInString(para), 880)

	th := p.Pack([]string{para})
	require.Greater(t, len(th.Segments), 1)
	for i, seg := range th.Segments {
		assert.LessOrEqual(t, seg.Len(), p.Capacity-p.WordHeadroom, "segment %d too long", i)
		assert.False(t, seg.Oversized)
	}
	assert.Equal(t, strings.Fields(para), rejoinWords(th))
}

func TestPackOversizedWordIsKeptWhole(t *testing.T) {
	p := NewPacker(nil)
	long := exactly(400, 'x')
	th := p.Pack([]string{"intro", "before " + long + " after"})

	var found bool
	for _, seg := range th.Segments {
		if seg.Text() == long {
			found = true
			assert.True(t, seg.Oversized)
		} else {
			assert.LessOrEqual(t, seg.Len(), p.Capacity)
		}
	}
	assert.True(t, found, "oversized word should stand alone in its segment")
	assert.Equal(t, []string{"intro", "before", long, "after"}, rejoinWords(th))
}

func TestPackTrailingWordRunStaysOpen(t *testing.T) {
	p := NewPacker(nil)
	th := p.Pack([]string{words(40), "tail"})
	last := th.Segments[len(th.Segments)-1]
	assert.Equal(t, "tail", last.Parts[len(last.Parts)-1])
	assert.Greater(t, len(last.Parts), 1, "the chunk after a split should join the last word run")
}

func TestRenderNumbering(t *testing.T) {
	p := NewPacker(nil)
	chunks := []string{exactly(200, 'a'), exactly(200, 'b'), exactly(200, 'c')}

	th := p.Pack(chunks)
	require.Len(t, th.Segments, 3)
	rendered := th.Render(DefaultSeparator)
	assert.NotContains(t, rendered, "1/ ", "three segments are not numbered")
	assert.Equal(t, strings.Join(chunks, DefaultSeparator), rendered)

	chunks = append(chunks, exactly(200, 'd'))
	th = p.Pack(chunks)
	require.Len(t, th.Segments, 4)
	parts := strings.Split(th.Render(DefaultSeparator), DefaultSeparator)
	require.Len(t, parts, 4)
	for i, part := range parts {
		assert.True(t, strings.HasPrefix(part, fmt.Sprintf("%d/ ", i+1)), "part %d: %q", i, part[:5])
	}
}

func TestRenderNumberingIsOutsideCapacity(t *testing.T) {
	p := NewPacker(nil)
	chunks := []string{exactly(280, 'a'), exactly(280, 'b'), exactly(280, 'c'), exactly(280, 'd')}

	th := p.Pack(chunks)
	require.Len(t, th.Segments, 4)
	for i, text := range th.Texts() {
		assert.Equal(t, 280, th.Segments[i].Len())
		assert.Equal(t, 280+len(fmt.Sprintf("%d/ ", i+1)), len([]rune(text)))
	}
}

func TestRenderSingleSegmentTruncates(t *testing.T) {
	th := models.Thread{
		Segments: []models.Segment{{Parts: []string{exactly(300, 'z')}, Oversized: true}},
		Capacity: 280,
	}
	assert.Equal(t, exactly(280, 'z'), th.Render(DefaultSeparator))
}

func TestPackNonPositiveCapacity(t *testing.T) {
	p := NewPacker(nil)
	p.Capacity = 0
	th := p.Pack([]string{"only"})
	require.Len(t, th.Segments, 1)
	assert.Equal(t, "", th.Render(DefaultSeparator))
}

func TestPackDeterministic(t *testing.T) {
	p := NewPacker(nil)
	chunks := []string{words(30), "middle", words(90), exactly(281, 'q')}
	first := p.Pack(chunks).Render(DefaultSeparator)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Pack(chunks).Render(DefaultSeparator))
	}
}

// stripNumber removes an "i/ " prefix
func stripNumber(s string, i int) string {
	return strings.TrimPrefix(s, fmt.Sprintf("%d/ ", i+1))
}

func FuzzPackPreservesOrder(f *testing.F) {
	f.Add("Check out our new feature.\n\n- Saves time\n\n- Saves money", 280)
	f.Add(words(120), 280)
	f.Add("a\n\nb\n\nc\n\nd\n\ne", 3)
	f.Add(exactly(500, 'w')+" tail", 100)
	f.Add("", 280)

	f.Fuzz(func(t *testing.T, input string, capacity int) {
		if capacity < 10 || capacity > 1000 || !utf8.ValidString(input) {
			t.Skip()
		}
		p := NewPacker(nil)
		p.Capacity = capacity
		chunks := Chunks(input)
		th := p.Pack(chunks)

		var want []string
		for _, c := range chunks {
			want = append(want, strings.Fields(c)...)
		}
		got := rejoinWords(th)
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Fatalf("word order changed:\nwant %q\n got %q", want, got)
		}

		for i, seg := range th.Segments {
			if seg.Len() == 0 {
				t.Fatalf("segment %d is empty", i)
			}
			if seg.Len() > capacity && !seg.Oversized {
				t.Fatalf("segment %d has %d chars, capacity %d", i, seg.Len(), capacity)
			}
		}

		if len(th.Segments) > 1 {
			parts := strings.Split(th.Render(DefaultSeparator), DefaultSeparator)
			if len(parts) != len(th.Segments) {
				t.Fatalf("rendered %d parts for %d segments", len(parts), len(th.Segments))
			}
			for i, part := range parts {
				if th.Numbered() {
					part = stripNumber(part, i)
				}
				if part != th.Segments[i].Text() {
					t.Fatalf("part %d lost its content", i)
				}
			}
		}
	})
}
