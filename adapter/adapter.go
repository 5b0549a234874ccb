package adapter

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
	"github.com/tenebris-tech/x2post/adapter/thread"
	"github.com/tenebris-tech/x2post/adapter/transform"
)

// dateLayout is the front matter date format
const dateLayout = "2006-01-02"

// Request is one piece of content to adapt
type Request struct {
	Content string `json:"content"`
	// Title overrides the generated article title
	Title string `json:"title,omitempty"`
	// Keywords override the keywords found in the content
	Keywords []string `json:"keywords,omitempty"`
}

// Adapter renders content for every target surface. It holds no mutable
// state and is safe for concurrent use.
type Adapter struct {
	options      *Options
	logger       *zap.Logger
	shortForm    *transform.Pipeline
	professional *transform.Pipeline
}

// New creates a new Adapter with the given options
func New(opts ...Option) *Adapter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Clock == nil {
		options.Clock = DefaultOptions().Clock
	}

	packer := thread.NewPacker(options.Logger)
	packer.Capacity = options.Capacity
	packer.WordHeadroom = options.WordHeadroom
	packer.NumberingThreshold = options.NumberingThreshold

	pipelineOpts := &transform.PipelineOptions{
		Packer:              packer,
		ThreadSeparator:     options.ThreadSeparator,
		OnThreadPacked:      options.OnThreadPacked,
		LongLineThreshold:   options.LongLineThreshold,
		Hashtags:            options.Tables.Hashtags,
		HashtagsPerCategory: options.HashtagsPerCategory,
		HashtagCap:          options.HashtagCap,
		Questions:           options.Questions,
		CTAPhrase:           options.CTAPhrase,
		CTADomains:          ctaDomains(options),
	}

	return &Adapter{
		options:      options,
		logger:       options.Logger,
		shortForm:    transform.NewShortFormPipeline(pipelineOpts),
		professional: transform.NewProfessionalPipeline(pipelineOpts),
	}
}

func ctaDomains(options *Options) []string {
	domains := append([]string(nil), options.CTADomains...)
	if d := options.Brand.Domain(); d != "" {
		domains = append(domains, d)
	}
	return domains
}

// Options returns a copy of the adapter configuration
func (a *Adapter) Options() Options {
	return *a.options
}

// Adapt renders content for all surfaces
func (a *Adapter) Adapt(req Request) (*models.Result, error) {
	normalized, err := validate(req.Content)
	if err != nil {
		return nil, err
	}

	article, err := a.article(normalized, req)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		ShortForm:        a.shortForm.Transform(normalized).Text,
		ProfessionalForm: a.professional.Transform(normalized).Text,
		Article:          *article,
		Original:         req.Content,
	}
	a.logger.Debug("content adapted",
		zap.Int("length", text.Len(normalized)),
		zap.Int("short_form_length", text.Len(result.ShortForm)),
		zap.String("slug", article.Slug),
	)
	return result, nil
}

// ShortForm renders content as a micro-post, or as a thread when it does
// not fit in one
func (a *Adapter) ShortForm(content string) (string, error) {
	normalized, err := validate(content)
	if err != nil {
		return "", err
	}
	return a.shortForm.Transform(normalized).Text, nil
}

// Professional renders content as a long-form professional post
func (a *Adapter) Professional(content string) (string, error) {
	normalized, err := validate(content)
	if err != nil {
		return "", err
	}
	return a.professional.Transform(normalized).Text, nil
}

// Article renders content as a blog article with metadata
func (a *Adapter) Article(req Request) (*models.Article, error) {
	normalized, err := validate(req.Content)
	if err != nil {
		return nil, err
	}
	return a.article(normalized, req)
}

func (a *Adapter) article(normalized string, req Request) (*models.Article, error) {
	opts := a.options

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = metadata.Title(normalized, opts.TitleMaxLength)
	}

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = metadata.Keywords(opts.Tables.Keywords, normalized)
	} else {
		keywords = append([]string(nil), keywords...)
	}

	article := &models.Article{
		Title:        title,
		Slug:         metadata.SlugForTitle(title),
		Summary:      metadata.Summary(normalized, opts.SummaryMaxLength),
		Keywords:     keywords,
		Hashtags:     metadata.Hashtags(opts.Tables.Hashtags, normalized, opts.HashtagsPerCategory, opts.HashtagCap),
		HeroImageKey: metadata.HeroImage(opts.Tables.Images, normalized),
	}

	body := transform.ArticleBody(normalized, transform.ArticleOptions{
		MaxSections: opts.MaxSections,
		Brand:       opts.Brand,
	})

	header, err := transform.FrontMatter{
		Title:       article.Title,
		Description: article.Summary,
		Date:        opts.Clock().Format(dateLayout),
		Author:      opts.Author,
		Keywords:    article.Keywords,
		Slug:        article.Slug,
		HeroImage:   opts.ImagePathPrefix + article.HeroImageKey,
	}.Render()
	if err != nil {
		return nil, errors.Wrapf(err, "rendering article %q", article.Slug)
	}

	article.BodyMarkdown = header + body
	article.WordCount = len(strings.Fields(body))
	return article, nil
}

// AdaptTopic builds content from a topic and its key points and adapts it
func (a *Adapter) AdaptTopic(topic string, keyPoints []string, title string) (*models.Result, error) {
	return a.Adapt(Request{Content: TopicContent(topic, keyPoints), Title: title})
}

// TopicContent formats a topic and its key points as adaptable content
func TopicContent(topic string, keyPoints []string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(topic))
	var points []string
	for _, p := range keyPoints {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	if len(points) > 0 {
		b.WriteString("\n\nKey points:\n")
		for _, p := range points {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// NeedsThread reports whether content is too long for a single short-form post
func (a *Adapter) NeedsThread(content string) bool {
	return text.Len(text.Normalize(content)) > a.options.Capacity
}
