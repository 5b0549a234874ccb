package transform

import (
	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/thread"
)

// PipelineOptions configures the surface pipelines
type PipelineOptions struct {
	Packer          *thread.Packer
	ThreadSeparator string
	// OnThreadPacked is called with the segment count of every thread built
	OnThreadPacked func(segments int)

	LongLineThreshold int

	Hashtags            metadata.Table
	HashtagsPerCategory int
	HashtagCap          int

	Questions []string
	CTAPhrase string
	// CTADomains are shortened even when a call to action writes them bare
	CTADomains []string
}

// NewShortFormPipeline builds the micro-post pipeline. Markers become arrows
// before links are shortened so a CTA arrow is never mistaken for a bullet,
// and hashtags go before line breaking so no line is left holding only a tag.
func NewShortFormPipeline(opts *PipelineOptions) *Pipeline {
	packer := opts.Packer
	if packer == nil {
		packer = thread.NewPacker(nil)
	}
	return NewPipeline(
		NewNormalize(),
		NewMarkersToArrows(),
		NewShortenCTA(opts.CTADomains...),
		NewStripHashtags(),
		NewBreakLongLines(opts.LongLineThreshold),
		NewPackThread(packer, opts.ThreadSeparator, opts.OnThreadPacked),
	)
}

// NewProfessionalPipeline builds the long-form professional pipeline.
// Calls to action are expanded before arrows turn into bullets, otherwise a
// shortened CTA would be rendered as a list item.
func NewProfessionalPipeline(opts *PipelineOptions) *Pipeline {
	return NewPipeline(
		NewNormalize(),
		NewExpandCTA(opts.CTAPhrase),
		NewArrowsToBullets(),
		NewFormatParagraphs(),
		NewEngagementQuestion(opts.Questions),
		NewAppendHashtags(opts.Hashtags, opts.HashtagsPerCategory, opts.HashtagCap),
	)
}
