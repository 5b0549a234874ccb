package batch

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter"
)

// DefaultExtensions lists the file extensions adapted by default
var DefaultExtensions = []string{".txt", ".md"}

// DefaultWorkers is the default number of files adapted concurrently
const DefaultWorkers = 4

// Options holds configuration for the batch adapter
type Options struct {
	// Recursion enables recursive directory traversal
	Recursion bool

	// Extensions lists source file extensions (default: .txt, .md)
	Extensions []string

	// Platforms selects the renderings written per source file (default: all)
	Platforms []Platform

	// SkipExisting skips sources whose outputs already exist (default: true)
	SkipExisting bool

	// OutputDirectory writes all output files to this directory (flat structure)
	// If empty, output files are placed next to source files
	OutputDirectory string

	// Workers bounds the number of files adapted concurrently
	Workers int

	// AdapterOptions are passed to the content adapter
	AdapterOptions []adapter.Option

	Logger *zap.Logger

	// Callbacks are never called concurrently with each other

	// OnFileStart is called when starting to adapt a file
	OnFileStart func(path string)

	// OnFileComplete is called when a file is adapted, with the files written
	OnFileComplete func(path string, outputs []string, err error)

	// OnFileSkipped is called when a file is skipped (e.g., output already exists)
	OnFileSkipped func(path, outputPath, reason string)
}

// Option is a functional option for configuring the batch adapter
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() *Options {
	return &Options{
		Recursion:    false,
		Extensions:   DefaultExtensions,
		Platforms:    AllPlatforms,
		SkipExisting: true,
		Workers:      DefaultWorkers,
		Logger:       zap.NewNop(),
	}
}

// WithRecursion enables or disables recursive directory traversal
func WithRecursion(recursive bool) Option {
	return func(o *Options) {
		o.Recursion = recursive
	}
}

// WithExtensions sets the source file extensions
func WithExtensions(exts []string) Option {
	return func(o *Options) {
		// Normalize extensions to lowercase with leading dot
		normalized := make([]string, len(exts))
		for i, ext := range exts {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			normalized[i] = ext
		}
		o.Extensions = normalized
	}
}

// WithPlatforms selects the renderings written per source file
func WithPlatforms(platforms ...Platform) Option {
	return func(o *Options) {
		if len(platforms) > 0 {
			o.Platforms = platforms
		}
	}
}

// WithSkipExisting sets whether to skip sources whose outputs already exist
func WithSkipExisting(skip bool) Option {
	return func(o *Options) {
		o.SkipExisting = skip
	}
}

// WithOutputDirectory sets the output directory for generated files
func WithOutputDirectory(dir string) Option {
	return func(o *Options) {
		o.OutputDirectory = dir
	}
}

// WithWorkers sets the number of files adapted concurrently
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithAdapterOptions sets options to pass to the content adapter
func WithAdapterOptions(opts ...adapter.Option) Option {
	return func(o *Options) {
		o.AdapterOptions = opts
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnFileStart sets the callback for when adapting a file starts
func WithOnFileStart(callback func(path string)) Option {
	return func(o *Options) {
		o.OnFileStart = callback
	}
}

// WithOnFileComplete sets the callback for when adapting a file completes
func WithOnFileComplete(callback func(path string, outputs []string, err error)) Option {
	return func(o *Options) {
		o.OnFileComplete = callback
	}
}

// WithOnFileSkipped sets the callback for when a file is skipped
func WithOnFileSkipped(callback func(path, outputPath, reason string)) Option {
	return func(o *Options) {
		o.OnFileSkipped = callback
	}
}
