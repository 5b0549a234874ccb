// Package adapter turns one piece of free-form text into platform-ready
// renderings: a short-form post or thread, a professional long-form post and
// a blog article with generated metadata. It performs no I/O.
package adapter

import (
	"time"

	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/thread"
	"github.com/tenebris-tech/x2post/adapter/transform"
)

// Default limits
const (
	DefaultCapacity            = thread.DefaultCapacity
	DefaultWordHeadroom        = thread.DefaultWordHeadroom
	DefaultNumberingThreshold  = thread.DefaultNumberingThreshold
	DefaultSummaryMaxLength    = 160
	DefaultTitleMaxLength      = 60
	DefaultLongLineThreshold   = 100
	DefaultMaxSections         = 5
	DefaultHashtagCap          = 5
	DefaultHashtagsPerCategory = 2
	DefaultAuthor              = "Steve Defendre"
	DefaultImagePathPrefix     = "/blog/"
)

// Options holds configuration for the adapter
type Options struct {
	// Capacity is the short-form size limit in characters
	Capacity int
	// WordHeadroom is reserved per segment when a paragraph is split into words
	WordHeadroom int
	// NumberingThreshold is the segment count above which thread parts are numbered
	NumberingThreshold int
	// ThreadSeparator joins thread parts
	ThreadSeparator string

	SummaryMaxLength  int
	TitleMaxLength    int
	LongLineThreshold int
	MaxSections       int

	HashtagCap          int
	HashtagsPerCategory int

	// Tables are the keyword, hashtag and hero image lookup tables
	Tables metadata.Tables
	// Questions is the engagement question pool
	Questions []string
	// CTAPhrase introduces an expanded call to action on the professional surface
	CTAPhrase string
	// CTADomains are call-to-action domains recognised without a scheme or
	// "www."; the brand domain is always included
	CTADomains []string

	Author          string
	Brand           transform.Brand
	ImagePathPrefix string

	// Clock supplies the article date; it is the only non-deterministic input
	Clock func() time.Time

	Logger *zap.Logger

	// OnThreadPacked is called with the segment count of every thread built
	OnThreadPacked func(segments int)
}

// Option is a functional option for configuring the adapter
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() *Options {
	return &Options{
		Capacity:            DefaultCapacity,
		WordHeadroom:        DefaultWordHeadroom,
		NumberingThreshold:  DefaultNumberingThreshold,
		ThreadSeparator:     thread.DefaultSeparator,
		SummaryMaxLength:    DefaultSummaryMaxLength,
		TitleMaxLength:      DefaultTitleMaxLength,
		LongLineThreshold:   DefaultLongLineThreshold,
		MaxSections:         DefaultMaxSections,
		HashtagCap:          DefaultHashtagCap,
		HashtagsPerCategory: DefaultHashtagsPerCategory,
		Tables:              metadata.DefaultTables(),
		Questions:           transform.DefaultQuestions,
		CTAPhrase:           transform.DefaultCTAPhrase,
		Author:              DefaultAuthor,
		Brand:               transform.DefaultBrand,
		ImagePathPrefix:     DefaultImagePathPrefix,
		Clock:               time.Now,
		Logger:              zap.NewNop(),
	}
}

// WithCapacity sets the short-form size limit
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		o.Capacity = capacity
	}
}

// WithWordHeadroom sets the space reserved when splitting a paragraph into words
func WithWordHeadroom(headroom int) Option {
	return func(o *Options) {
		o.WordHeadroom = headroom
	}
}

// WithNumberingThreshold sets the segment count above which parts are numbered
func WithNumberingThreshold(threshold int) Option {
	return func(o *Options) {
		o.NumberingThreshold = threshold
	}
}

// WithThreadSeparator sets the separator between thread parts
func WithThreadSeparator(sep string) Option {
	return func(o *Options) {
		o.ThreadSeparator = sep
	}
}

// WithSummaryMaxLength sets the summary limit
func WithSummaryMaxLength(n int) Option {
	return func(o *Options) {
		o.SummaryMaxLength = n
	}
}

// WithTitleMaxLength sets the generated title limit
func WithTitleMaxLength(n int) Option {
	return func(o *Options) {
		o.TitleMaxLength = n
	}
}

// WithLongLineThreshold sets the line length above which lines are broken into sentences
func WithLongLineThreshold(n int) Option {
	return func(o *Options) {
		o.LongLineThreshold = n
	}
}

// WithMaxSections sets the maximum number of key point sections in an article
func WithMaxSections(n int) Option {
	return func(o *Options) {
		o.MaxSections = n
	}
}

// WithHashtagLimits sets the per-category and total hashtag limits
func WithHashtagLimits(perCategory, max int) Option {
	return func(o *Options) {
		o.HashtagsPerCategory = perCategory
		o.HashtagCap = max
	}
}

// WithTables replaces the lookup tables
func WithTables(tables metadata.Tables) Option {
	return func(o *Options) {
		o.Tables = tables
	}
}

// WithQuestions replaces the engagement question pool
func WithQuestions(questions []string) Option {
	return func(o *Options) {
		o.Questions = questions
	}
}

// WithCTAPhrase sets the phrase an expanded call to action starts with
func WithCTAPhrase(phrase string) Option {
	return func(o *Options) {
		o.CTAPhrase = phrase
	}
}

// WithCTADomains adds domains whose bare links are shortened in calls to action
func WithCTADomains(domains ...string) Option {
	return func(o *Options) {
		o.CTADomains = append(o.CTADomains, domains...)
	}
}

// WithAuthor sets the article author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithBrand sets the call-to-action target of the article conclusion
func WithBrand(brand transform.Brand) Option {
	return func(o *Options) {
		o.Brand = brand
	}
}

// WithImagePathPrefix sets the path prefix of the hero image in front matter
func WithImagePathPrefix(prefix string) Option {
	return func(o *Options) {
		o.ImagePathPrefix = prefix
	}
}

// WithClock sets the time source for article dates
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnThreadPacked sets the callback for thread packing
func WithOnThreadPacked(callback func(segments int)) Option {
	return func(o *Options) {
		o.OnThreadPacked = callback
	}
}
