package transform

import (
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
	"github.com/tenebris-tech/x2post/adapter/thread"
)

// PackThread turns text longer than the packer's capacity into a thread.
// In a thread every line is its own chunk.
type PackThread struct {
	Packer    *thread.Packer
	Separator string
	// OnPacked is called with the segment count whenever a thread is built
	OnPacked func(segments int)
}

// NewPackThread creates a new PackThread transformation
func NewPackThread(packer *thread.Packer, separator string, onPacked func(int)) *PackThread {
	if separator == "" {
		separator = thread.DefaultSeparator
	}
	return &PackThread{Packer: packer, Separator: separator, OnPacked: onPacked}
}

// Transform packs the draft when it does not fit in one post
func (p *PackThread) Transform(draft *models.Draft) *models.Draft {
	draft.Text = strings.TrimSpace(draft.Text)
	if text.Len(draft.Text) <= p.Packer.Capacity {
		return draft
	}

	var chunks []string
	for _, line := range strings.Split(draft.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			chunks = append(chunks, line)
		}
	}

	th := p.Packer.Pack(chunks)
	if p.OnPacked != nil {
		p.OnPacked(len(th.Segments))
	}
	draft.Text = th.Render(p.Separator)
	return draft
}
