// Package thread packs paragraph chunks into capacity-bounded segments for
// short-form posts
package thread

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// Defaults for the short-form surface
const (
	DefaultCapacity           = 280
	DefaultWordHeadroom       = 5
	DefaultNumberingThreshold = 3
	DefaultSeparator          = "\n\n\n\n"
)

// Packer greedily fills segments up to Capacity characters
type Packer struct {
	// Capacity is the maximum rendered length of one segment
	Capacity int
	// WordHeadroom is reserved when a chunk has to be split into words,
	// leaving room for a position prefix
	WordHeadroom int
	// NumberingThreshold is the segment count above which parts are numbered
	NumberingThreshold int

	logger *zap.Logger
}

// NewPacker creates a packer with the default short-form limits
func NewPacker(logger *zap.Logger) *Packer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Packer{
		Capacity:           DefaultCapacity,
		WordHeadroom:       DefaultWordHeadroom,
		NumberingThreshold: DefaultNumberingThreshold,
		logger:             logger,
	}
}

// Chunks splits text into paragraph chunks on blank lines
func Chunks(s string) []string {
	var chunks []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			chunks = append(chunks, p)
		}
	}
	return chunks
}

// segmentBuilder is the open segment; lengths are tracked incrementally so
// packing stays linear in the input size
type segmentBuilder struct {
	parts     []string
	length    int
	oversized bool
}

func (b *segmentBuilder) empty() bool {
	return len(b.parts) == 0
}

// lengthWith returns the rendered length if part were appended with joiner
func (b *segmentBuilder) lengthWith(partLen, joinerLen int) int {
	if b.empty() {
		return partLen
	}
	return b.length + joinerLen + partLen
}

func (b *segmentBuilder) seal() models.Segment {
	seg := models.Segment{Parts: b.parts, Oversized: b.oversized}
	*b = segmentBuilder{}
	return seg
}

// Pack places chunks, in order, into the fewest segments a single greedy pass
// can achieve. A chunk is only split when it alone exceeds Capacity; it is
// then packed word by word against Capacity-WordHeadroom. A word longer than
// that limit is kept whole in its own segment.
func (p *Packer) Pack(chunks []string) models.Thread {
	thread := models.Thread{
		Capacity:           p.Capacity,
		NumberingThreshold: p.NumberingThreshold,
	}
	joinerLen := text.Len(models.ChunkJoiner)
	var open segmentBuilder

	push := func() {
		if !open.empty() {
			thread.Segments = append(thread.Segments, open.seal())
		}
	}

	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		chunkLen := text.Len(chunk)

		if open.lengthWith(chunkLen, joinerLen) <= p.Capacity {
			open.parts = append(open.parts, chunk)
			open.length = open.lengthWith(chunkLen, joinerLen)
			continue
		}

		push()

		if chunkLen <= p.Capacity {
			open.parts = []string{chunk}
			open.length = chunkLen
			continue
		}

		p.logger.Debug("Splitting oversized chunk into words",
			zap.Int("length", chunkLen),
			zap.Int("capacity", p.Capacity))
		open = p.packWords(chunk, &thread)
	}
	push()

	p.logger.Debug("Packed thread",
		zap.Int("chunks", len(chunks)),
		zap.Int("segments", len(thread.Segments)))

	return thread
}

// packWords splits one oversized chunk into word runs. Every full run is
// appended to the thread; the last run is returned still open so following
// chunks may join it.
func (p *Packer) packWords(chunk string, thread *models.Thread) segmentBuilder {
	limit := p.Capacity - p.WordHeadroom
	var run []string
	runLen := 0

	flush := func() {
		if len(run) == 0 {
			return
		}
		thread.Segments = append(thread.Segments, models.Segment{
			Parts:     []string{strings.Join(run, " ")},
			Oversized: runLen > limit,
		})
		run, runLen = nil, 0
	}

	for _, word := range strings.Fields(chunk) {
		wordLen := text.Len(word)
		next := wordLen
		if len(run) > 0 {
			next = runLen + 1 + wordLen
		}
		if next <= limit || len(run) == 0 {
			run = append(run, word)
			runLen = next
			continue
		}
		flush()
		run = []string{word}
		runLen = wordLen
	}

	if len(run) == 0 {
		return segmentBuilder{}
	}
	return segmentBuilder{
		parts:     []string{strings.Join(run, " ")},
		length:    runLen,
		oversized: runLen > limit,
	}
}
