// Package batch adapts text files on disk. It walks files or directory trees
// and writes one rendering per platform next to each source file or into an
// output directory.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tenebris-tech/x2post/adapter"
)

// Batch adapts files and directories of text content
type Batch struct {
	options *Options
	adapter *adapter.Adapter
	logger  *zap.Logger
	// Track visited directories and files to avoid loops and duplicates
	visitedDirs    map[string]bool
	processedFiles map[string]bool
	// reserved holds output stems claimed during the current run
	reserved map[string]bool
	mu       sync.Mutex
}

// Result contains the results of a batch operation
type Result struct {
	Adapted int
	Skipped int
	Failed  int
	Errors  []error
}

// job is one source file and the outputs planned for it
type job struct {
	source  string
	outputs []string
}

// New creates a new Batch with the given options
func New(opts ...Option) *Batch {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Workers < 1 {
		options.Workers = 1
	}
	if len(options.Platforms) == 0 {
		options.Platforms = AllPlatforms
	}
	adapterOpts := append([]adapter.Option{adapter.WithLogger(options.Logger)}, options.AdapterOptions...)
	return &Batch{
		options: options,
		adapter: adapter.New(adapterOpts...),
		logger:  options.Logger,
	}
}

// Adapt adapts a file or directory.
// If path is a file, it adapts that file.
// If path is a directory and Recursion is enabled, it recursively adapts all matching files.
// Returns an error if path is a directory and Recursion is disabled, or if
// ctx is cancelled before every file was processed.
func (b *Batch) Adapt(ctx context.Context, path string) (*Result, error) {
	// Reset tracking maps for each call
	b.visitedDirs = make(map[string]bool)
	b.processedFiles = make(map[string]bool)
	b.reserved = make(map[string]bool)

	result := &Result{}

	// Get file info, following symlinks
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot access %s", path)
	}

	// Create output directory if specified
	if b.options.OutputDirectory != "" {
		if err := os.MkdirAll(b.options.OutputDirectory, 0755); err != nil {
			return nil, errors.Wrap(err, "cannot create output directory")
		}
	}

	var jobs []job
	if info.IsDir() {
		if !b.options.Recursion {
			return nil, errors.WithHint(
				errors.Newf("%s is a directory", path),
				"use WithRecursion(true) to process directories",
			)
		}
		jobs = b.walkDir(path, result, jobs)
	} else {
		jobs = b.planFile(path, result, jobs)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.options.Workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b.process(j, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, errors.Wrap(err, "batch interrupted")
	}

	b.logger.Info("batch complete",
		zap.String("path", path),
		zap.Int("adapted", result.Adapted),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// walkDir recursively walks a directory, following symlinks
func (b *Batch) walkDir(dir string, result *Result, jobs []job) []job {
	// Resolve to real path to detect loops
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, errors.Wrapf(err, "cannot resolve %s", dir))
		return jobs
	}

	// Check if we've already visited this real directory
	if b.visitedDirs[realDir] {
		return jobs
	}
	b.visitedDirs[realDir] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, errors.Wrapf(err, "cannot read directory %s", dir))
		return jobs
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Get file info, following symlinks
		info, err := os.Stat(path)
		if err != nil {
			// Only count as failure if it looks like a source file
			if b.isSource(path) {
				result.Failed++
				result.Errors = append(result.Errors, errors.Wrapf(err, "cannot access %s", path))
			}
			// Silently skip broken symlinks to directories or other files
			continue
		}

		if info.IsDir() {
			jobs = b.walkDir(path, result, jobs)
		} else {
			jobs = b.planFile(path, result, jobs)
		}
	}
	return jobs
}

// planFile queues a source file if it matches the configured extensions
func (b *Batch) planFile(path string, result *Result, jobs []job) []job {
	if !b.isSource(path) {
		return jobs
	}

	// Resolve symlinks to get real path
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, errors.Wrapf(err, "cannot resolve %s", path))
		return jobs
	}

	// Skip if we've already seen this real file
	if b.processedFiles[realPath] {
		return jobs
	}
	b.processedFiles[realPath] = true

	outputs, skip, reason := b.getOutputPaths(realPath)
	if skip {
		if b.options.OnFileSkipped != nil {
			b.options.OnFileSkipped(realPath, outputs[0], reason)
		}
		b.logger.Debug("file skipped", zap.String("path", realPath), zap.String("reason", reason))
		result.Skipped++
		return jobs
	}

	return append(jobs, job{source: realPath, outputs: outputs})
}

// process adapts one file and writes its outputs
func (b *Batch) process(j job, result *Result) {
	b.notify(func() {
		if b.options.OnFileStart != nil {
			b.options.OnFileStart(j.source)
		}
	})

	err := b.adaptFile(j)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.options.OnFileComplete != nil {
		b.options.OnFileComplete(j.source, j.outputs, err)
	}
	if err != nil {
		b.logger.Warn("adaptation failed", zap.String("path", j.source), zap.Error(err))
		result.Failed++
		result.Errors = append(result.Errors, errors.Wrapf(err, "%s", j.source))
		return
	}
	b.logger.Info("file adapted", zap.String("path", j.source), zap.Strings("outputs", j.outputs))
	result.Adapted++
}

func (b *Batch) notify(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn()
}

// adaptFile reads a source file and writes one rendering per platform
func (b *Batch) adaptFile(j job) error {
	data, err := os.ReadFile(j.source)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	result, err := b.adapter.Adapt(adapter.Request{Content: string(data)})
	if err != nil {
		return err
	}

	for i, p := range b.options.Platforms {
		var content string
		switch p {
		case PlatformX:
			content = result.ShortForm + "\n"
		case PlatformLinkedIn:
			content = result.ProfessionalForm + "\n"
		case PlatformBlog:
			content = result.Article.BodyMarkdown
		}
		if err := os.WriteFile(j.outputs[i], []byte(content), 0644); err != nil {
			return errors.Wrap(err, "writing output file")
		}
	}
	return nil
}

// isSource reports whether path has a configured extension and is not a
// file this package generated
func (b *Batch) isSource(path string) bool {
	if isGenerated(filepath.Base(path)) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range b.options.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// getOutputPaths determines the output paths for a given source file, one per
// platform. Returns the paths, whether to skip the file, and the skip reason.
func (b *Batch) getOutputPaths(inputPath string) ([]string, bool, string) {
	dir := filepath.Dir(inputPath)
	if b.options.OutputDirectory != "" {
		dir = b.options.OutputDirectory
	}
	base := filepath.Base(inputPath)
	stem := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base)))

	if existing := b.existingOutput(stem); existing != "" {
		if b.options.SkipExisting {
			return []string{existing}, true, "output file exists"
		}
		stem = b.findUniqueStem(stem)
	}

	b.reserved[stem] = true
	return b.outputPaths(stem), false, ""
}

func (b *Batch) outputPaths(stem string) []string {
	paths := make([]string, len(b.options.Platforms))
	for i, p := range b.options.Platforms {
		paths[i] = stem + p.Suffix()
	}
	return paths
}

// existingOutput returns an output of stem that exists on disk or was claimed
// earlier in this run, or "" when the stem is free
func (b *Batch) existingOutput(stem string) string {
	paths := b.outputPaths(stem)
	if b.reserved[stem] {
		return paths[0]
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// findUniqueStem finds a free output stem by appending a number
func (b *Batch) findUniqueStem(stem string) string {
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", stem, i)
		if b.existingOutput(candidate) == "" {
			return candidate
		}
	}
}
