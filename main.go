package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter"
	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/batch"
	"github.com/tenebris-tech/x2post/internal/config"
	"github.com/tenebris-tech/x2post/internal/logging"
)

var version = "dev"

type options struct {
	file        string
	title       string
	keywords    []string
	topicPoints []string
	platforms   []string
	json        bool
	save        bool
	outputDir   string
	configPath  string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "x2post [content]",
		Short: "Adapt one piece of content for X, LinkedIn and a blog",
		Long: `x2post turns free-form text into a short-form post or thread,
a professional long-form post and a blog article with front matter.

Content is taken from the arguments, from --file, or from stdin with --file -.
With --topic-point the content is treated as a topic and the points are
listed under it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read content from a file (- for stdin)")
	f.StringVar(&opts.title, "title", "", "article title (generated when empty)")
	f.StringSliceVar(&opts.keywords, "keyword", nil, "article keyword (repeatable)")
	f.StringArrayVar(&opts.topicPoints, "topic-point", nil, "key point of a topic (repeatable)")
	f.StringSliceVarP(&opts.platforms, "platform", "p", nil, "platform to render: x, linkedin, blog (repeatable, default all)")
	f.BoolVar(&opts.json, "json", false, "print the selected platforms as JSON")
	f.BoolVar(&opts.save, "save", false, "write the blog article to <output-dir>/<slug>.md")
	f.StringVar(&opts.outputDir, "output-dir", ".", "directory for --save")
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = logging.LevelDebug
	}
	logger, err := logging.New(level, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	content, err := readContent(cmd.InOrStdin(), opts.file, args)
	if err != nil {
		return err
	}

	platforms, err := batch.ParsePlatforms(opts.platforms)
	if err != nil {
		return err
	}
	if len(platforms) == 0 {
		platforms = batch.AllPlatforms
	}

	a := adapter.New(append(cfg.AdapterOptions(), adapter.WithLogger(logger))...)
	if len(opts.topicPoints) > 0 {
		content = adapter.TopicContent(content, opts.topicPoints)
	}
	result, err := a.Adapt(adapter.Request{
		Content:  content,
		Title:    opts.title,
		Keywords: opts.keywords,
	})
	if err != nil {
		return err
	}
	logger.Debug("adapted content",
		zap.Bool("thread", a.NeedsThread(content)),
		zap.String("slug", result.Article.Slug),
	)

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(selectPlatforms(result, platforms)); err != nil {
			return errors.Wrap(err, "encoding result")
		}
	} else {
		printResult(out, result, platforms, a.NeedsThread(content))
	}

	if opts.save {
		path, err := saveArticle(opts.outputDir, &result.Article)
		if err != nil {
			return err
		}
		if !opts.json {
			color.New(color.FgGreen).Fprintf(out, "Saved: %s\n", path)
		}
	}
	return nil
}

// platformResult is the JSON output; surfaces of platforms that were not
// selected are left out
type platformResult struct {
	ShortForm        string          `json:"short_form,omitempty"`
	ProfessionalForm string          `json:"professional_form,omitempty"`
	Article          *models.Article `json:"article,omitempty"`
	Original         string          `json:"original"`
}

func selectPlatforms(result *models.Result, platforms []batch.Platform) platformResult {
	out := platformResult{Original: result.Original}
	for _, p := range platforms {
		switch p {
		case batch.PlatformX:
			out.ShortForm = result.ShortForm
		case batch.PlatformLinkedIn:
			out.ProfessionalForm = result.ProfessionalForm
		case batch.PlatformBlog:
			article := result.Article
			out.Article = &article
		}
	}
	return out
}

// loadConfig layers .env files, the YAML file and X2POST_* variables
func loadConfig(path string) (*config.Config, error) {
	config.LoadEnv(nil)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readContent(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrap(err, "reading file")
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", errors.WithHint(
		errors.New("no content given"),
		"pass content as arguments, or use --file <path> or --file - for stdin",
	)
}

func printResult(out io.Writer, result *models.Result, platforms []batch.Platform, thread bool) {
	banner := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Faint)

	for _, p := range platforms {
		switch p {
		case batch.PlatformX:
			if thread {
				banner.Fprintln(out, "=== X (thread) ===")
			} else {
				banner.Fprintln(out, "=== X ===")
			}
			fmt.Fprintln(out, result.ShortForm)
		case batch.PlatformLinkedIn:
			banner.Fprintln(out, "=== LinkedIn ===")
			fmt.Fprintln(out, result.ProfessionalForm)
		case batch.PlatformBlog:
			article := result.Article
			banner.Fprintln(out, "=== Blog ===")
			label.Fprint(out, "Title:    ")
			fmt.Fprintln(out, article.Title)
			label.Fprint(out, "Slug:     ")
			fmt.Fprintln(out, article.Slug)
			label.Fprint(out, "Summary:  ")
			fmt.Fprintln(out, article.Summary)
			label.Fprint(out, "Keywords: ")
			fmt.Fprintln(out, strings.Join(article.Keywords, ", "))
			label.Fprint(out, "Hashtags: ")
			fmt.Fprintln(out, strings.Join(article.Hashtags, " "))
			label.Fprint(out, "Image:    ")
			fmt.Fprintln(out, article.HeroImageKey)
			label.Fprint(out, "Words:    ")
			fmt.Fprintln(out, article.WordCount)
			fmt.Fprintln(out)
			fmt.Fprint(out, article.BodyMarkdown)
		}
		fmt.Fprintln(out)
	}
}

func saveArticle(dir string, article *models.Article) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "cannot create output directory")
	}
	path := filepath.Join(dir, article.Slug+".md")
	if err := os.WriteFile(path, []byte(article.BodyMarkdown), 0644); err != nil {
		return "", errors.Wrap(err, "writing article")
	}
	return path, nil
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
