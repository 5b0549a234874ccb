// Package config loads x2post configuration from YAML files, .env files and
// X2POST_* environment variables
package config

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/tenebris-tech/x2post/adapter"
	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/transform"
	"github.com/tenebris-tech/x2post/batch"
	"github.com/tenebris-tech/x2post/server"
)

// Config is the complete x2post configuration
type Config struct {
	LogLevel string        `yaml:"log_level"`
	LogJSON  bool          `yaml:"log_json"`
	Adapter  AdapterConfig `yaml:"adapter"`
	Batch    BatchConfig   `yaml:"batch"`
	Server   server.Config `yaml:"server"`
}

// AdapterConfig configures content adaptation
type AdapterConfig struct {
	Capacity            int             `yaml:"capacity"`
	WordHeadroom        int             `yaml:"word_headroom"`
	NumberingThreshold  int             `yaml:"numbering_threshold"`
	ThreadSeparator     string          `yaml:"thread_separator"`
	SummaryMaxLength    int             `yaml:"summary_max_length"`
	TitleMaxLength      int             `yaml:"title_max_length"`
	LongLineThreshold   int             `yaml:"long_line_threshold"`
	MaxSections         int             `yaml:"max_sections"`
	HashtagCap          int             `yaml:"hashtag_cap"`
	HashtagsPerCategory int             `yaml:"hashtags_per_category"`
	Author              string          `yaml:"author"`
	Brand               transform.Brand `yaml:"brand"`
	ImagePathPrefix     string          `yaml:"image_path_prefix"`
	CTAPhrase           string          `yaml:"cta_phrase"`
	// CTADomains are shortened in calls to action even when written bare
	CTADomains []string `yaml:"cta_domains"`
	// Questions replaces the engagement question pool when set
	Questions []string `yaml:"questions"`
	// Rules are appended to the built-in lookup tables
	Rules RulesConfig `yaml:"rules"`
}

// RulesConfig holds extra lookup table rows
type RulesConfig struct {
	Keywords []RuleConfig `yaml:"keywords"`
	Hashtags []RuleConfig `yaml:"hashtags"`
	Images   []RuleConfig `yaml:"images"`
}

// RuleConfig is one lookup table row. The row matches when any substring in
// Contains or any whole word in Words appears in the content.
type RuleConfig struct {
	Contains []string `yaml:"contains"`
	Words    []string `yaml:"words"`
	Values   []string `yaml:"values"`
}

// BatchConfig configures batch adaptation
type BatchConfig struct {
	Recursive       bool     `yaml:"recursive"`
	Extensions      []string `yaml:"extensions"`
	Platforms       []string `yaml:"platforms"`
	SkipExisting    bool     `yaml:"skip_existing"`
	OutputDirectory string   `yaml:"output_directory"`
	Workers         int      `yaml:"workers"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	a := adapter.DefaultOptions()
	b := batch.DefaultOptions()

	platforms := make([]string, len(b.Platforms))
	for i, p := range b.Platforms {
		platforms[i] = string(p)
	}

	return &Config{
		LogLevel: "info",
		Adapter: AdapterConfig{
			Capacity:            a.Capacity,
			WordHeadroom:        a.WordHeadroom,
			NumberingThreshold:  a.NumberingThreshold,
			ThreadSeparator:     a.ThreadSeparator,
			SummaryMaxLength:    a.SummaryMaxLength,
			TitleMaxLength:      a.TitleMaxLength,
			LongLineThreshold:   a.LongLineThreshold,
			MaxSections:         a.MaxSections,
			HashtagCap:          a.HashtagCap,
			HashtagsPerCategory: a.HashtagsPerCategory,
			Author:              a.Author,
			Brand:               a.Brand,
			ImagePathPrefix:     a.ImagePathPrefix,
			CTAPhrase:           a.CTAPhrase,
		},
		Batch: BatchConfig{
			Recursive:    b.Recursion,
			Extensions:   append([]string(nil), b.Extensions...),
			Platforms:    platforms,
			SkipExisting: b.SkipExisting,
			Workers:      b.Workers,
		},
		Server: server.DefaultConfig(),
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration for values the adapter cannot work with
func (c *Config) Validate() error {
	a := c.Adapter
	switch {
	case a.Capacity <= 0:
		return invalid("adapter.capacity must be positive")
	case a.WordHeadroom < 0 || a.WordHeadroom >= a.Capacity:
		return invalid("adapter.word_headroom must be between 0 and capacity")
	case a.NumberingThreshold < 0:
		return invalid("adapter.numbering_threshold must not be negative")
	case a.SummaryMaxLength <= 0 || a.TitleMaxLength <= 0:
		return invalid("adapter summary and title lengths must be positive")
	case a.MaxSections < 0:
		return invalid("adapter.max_sections must not be negative")
	case a.HashtagCap < 0 || a.HashtagsPerCategory < 0:
		return invalid("adapter hashtag limits must not be negative")
	case c.Batch.Workers < 1:
		return invalid("batch.workers must be at least 1")
	case strings.TrimSpace(c.Server.Addr) == "":
		return invalid("server.addr must be set")
	}

	if _, err := batch.ParsePlatforms(c.Batch.Platforms); err != nil {
		return errors.Wrap(err, "batch.platforms")
	}

	tables := []struct {
		name string
		rows []RuleConfig
	}{
		{"keywords", a.Rules.Keywords},
		{"hashtags", a.Rules.Hashtags},
		{"images", a.Rules.Images},
	}
	for _, table := range tables {
		for i, r := range table.rows {
			if len(r.Contains)+len(r.Words) == 0 || len(r.Values) == 0 {
				return invalid("adapter.rules.%s[%d] needs a matcher and at least one value", table.name, i)
			}
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.WithHint(
		errors.Newf("invalid configuration: "+format, args...),
		"check the YAML file and X2POST_* environment variables",
	)
}

// Tables returns the built-in lookup tables with the configured rows appended
func (c *Config) Tables() metadata.Tables {
	tables := metadata.DefaultTables()
	tables.Keywords = tables.Keywords.Append(rules(c.Adapter.Rules.Keywords)...)
	tables.Hashtags = tables.Hashtags.Append(rules(c.Adapter.Rules.Hashtags)...)
	tables.Images = tables.Images.Append(rules(c.Adapter.Rules.Images)...)
	return tables
}

func rules(rows []RuleConfig) []metadata.Rule {
	out := make([]metadata.Rule, 0, len(rows))
	for _, row := range rows {
		var match metadata.Any
		for _, s := range row.Contains {
			match = append(match, metadata.Contains(s))
		}
		for _, w := range row.Words {
			match = append(match, metadata.Word(w))
		}
		out = append(out, metadata.Rule{Match: match, Values: row.Values})
	}
	return out
}

// AdapterOptions converts the adapter section to adapter options
func (c *Config) AdapterOptions() []adapter.Option {
	a := c.Adapter
	opts := []adapter.Option{
		adapter.WithCapacity(a.Capacity),
		adapter.WithWordHeadroom(a.WordHeadroom),
		adapter.WithNumberingThreshold(a.NumberingThreshold),
		adapter.WithThreadSeparator(a.ThreadSeparator),
		adapter.WithSummaryMaxLength(a.SummaryMaxLength),
		adapter.WithTitleMaxLength(a.TitleMaxLength),
		adapter.WithLongLineThreshold(a.LongLineThreshold),
		adapter.WithMaxSections(a.MaxSections),
		adapter.WithHashtagLimits(a.HashtagsPerCategory, a.HashtagCap),
		adapter.WithAuthor(a.Author),
		adapter.WithBrand(a.Brand),
		adapter.WithImagePathPrefix(a.ImagePathPrefix),
		adapter.WithCTAPhrase(a.CTAPhrase),
		adapter.WithTables(c.Tables()),
	}
	if len(a.Questions) > 0 {
		opts = append(opts, adapter.WithQuestions(a.Questions))
	}
	if len(a.CTADomains) > 0 {
		opts = append(opts, adapter.WithCTADomains(a.CTADomains...))
	}
	return opts
}

// BatchOptions converts the batch section to batch options
func (c *Config) BatchOptions() ([]batch.Option, error) {
	platforms, err := batch.ParsePlatforms(c.Batch.Platforms)
	if err != nil {
		return nil, err
	}
	opts := []batch.Option{
		batch.WithRecursion(c.Batch.Recursive),
		batch.WithPlatforms(platforms...),
		batch.WithSkipExisting(c.Batch.SkipExisting),
		batch.WithOutputDirectory(c.Batch.OutputDirectory),
		batch.WithWorkers(c.Batch.Workers),
		batch.WithAdapterOptions(c.AdapterOptions()...),
	}
	if len(c.Batch.Extensions) > 0 {
		opts = append(opts, batch.WithExtensions(c.Batch.Extensions))
	}
	return opts, nil
}

// ServerConfig returns the server section
func (c *Config) ServerConfig() server.Config {
	return c.Server
}
