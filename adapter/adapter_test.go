package adapter

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/thread"
	"github.com/tenebris-tech/x2post/adapter/transform"
)

const featurePost = "Check out our new feature.\n\n- Saves time\n- Saves money\n- Easy to use\n\nVisit https://example.com/defendresolutions today"

var partPrefix = regexp.MustCompile(`^\d+/ `)

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
}

func newTestAdapter(opts ...Option) *Adapter {
	return New(append([]Option{WithClock(fixedClock)}, opts...)...)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 280, opts.Capacity)
	assert.Equal(t, 5, opts.WordHeadroom)
	assert.Equal(t, 3, opts.NumberingThreshold)
	assert.Equal(t, "\n\n\n\n", opts.ThreadSeparator)
	assert.Equal(t, 160, opts.SummaryMaxLength)
	assert.Equal(t, 60, opts.TitleMaxLength)
	assert.Equal(t, 100, opts.LongLineThreshold)
	assert.Equal(t, 5, opts.MaxSections)
	assert.Equal(t, 5, opts.HashtagCap)
	assert.Equal(t, 2, opts.HashtagsPerCategory)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Clock)
}

func TestOptionsApplied(t *testing.T) {
	a := New(
		WithCapacity(500),
		WithWordHeadroom(10),
		WithNumberingThreshold(1),
		WithThreadSeparator("\n---\n"),
		WithHashtagLimits(1, 3),
		WithAuthor("Jane Doe"),
		WithLogger(nil),
		WithClock(nil),
	)
	opts := a.Options()
	assert.Equal(t, 500, opts.Capacity)
	assert.Equal(t, 10, opts.WordHeadroom)
	assert.Equal(t, 1, opts.NumberingThreshold)
	assert.Equal(t, "\n---\n", opts.ThreadSeparator)
	assert.Equal(t, 1, opts.HashtagsPerCategory)
	assert.Equal(t, 3, opts.HashtagCap)
	assert.Equal(t, "Jane Doe", opts.Author)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Clock)
}

func TestAdaptFeaturePost(t *testing.T) {
	result, err := newTestAdapter().Adapt(Request{Content: featurePost})
	require.NoError(t, err)

	assert.Equal(t, "Check out our new feature.\n\n→ Saves time\n→ Saves money\n→ Easy to use\n\n→ example.com/defendresolutions today", result.ShortForm)
	assert.NotContains(t, result.ShortForm, "#")
	assert.NotContains(t, result.ShortForm, "1/ ")

	assert.Contains(t, result.ProfessionalForm, "- Saves time\n- Saves money\n- Easy to use")
	assert.Contains(t, result.ProfessionalForm, "Visit https://example.com/defendresolutions today")

	professional, err := newTestAdapter().Professional(result.ShortForm)
	require.NoError(t, err)
	assert.Contains(t, professional, "• Saves time")
	assert.Contains(t, professional, "Learn more at example.com/defendresolutions today")
	assert.Contains(t, result.ProfessionalForm, "#BusinessGrowth")
	assert.Equal(t, featurePost, result.Original)

	article := result.Article
	assert.Equal(t, "Check Out Our New Feature", article.Title)
	assert.Equal(t, "check-out-our-new-feature", article.Slug)
	assert.Equal(t, []string{"technology", "business"}, article.Keywords)
	assert.Equal(t, "ai-tools-social.jpg", article.HeroImageKey)
	assert.LessOrEqual(t, len([]rune(article.Summary)), 160)
}

func TestAdaptArticleDocument(t *testing.T) {
	article, err := newTestAdapter(WithAuthor("Jane Doe")).Article(Request{Content: featurePost})
	require.NoError(t, err)

	fm, body, err := transform.ParseFrontMatter(article.BodyMarkdown)
	require.NoError(t, err)
	assert.Equal(t, article.Title, fm.Title)
	assert.Equal(t, article.Summary, fm.Description)
	assert.Equal(t, "2026-10-18", fm.Date)
	assert.Equal(t, "Jane Doe", fm.Author)
	assert.Equal(t, article.Keywords, fm.Keywords)
	assert.Equal(t, article.Slug, fm.Slug)
	assert.Equal(t, "/blog/ai-tools-social.jpg", fm.HeroImage)

	assert.True(t, strings.HasPrefix(body, "## Introduction\n\nCheck out our new feature."), "body: %q", body)
	assert.Contains(t, body, "Saves time")
	assert.Contains(t, body, "## Conclusion")
	assert.Equal(t, len(strings.Fields(body)), article.WordCount)
}

func TestAdaptWordFallback(t *testing.T) {
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit"}
	var b strings.Builder
	for i := 0; b.Len() < 900; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(words[i%len(words)])
	}
	in := b.String()

	short, err := newTestAdapter().ShortForm(in)
	require.NoError(t, err)

	parts := strings.Split(short, thread.DefaultSeparator)
	require.Greater(t, len(parts), 3)

	var rejoined []string
	for i, part := range parts {
		require.True(t, partPrefix.MatchString(part), "part %d is not numbered: %q", i, part)
		segment := partPrefix.ReplaceAllString(part, "")
		assert.LessOrEqual(t, len([]rune(segment)), 275, "part %d", i)
		assert.LessOrEqual(t, len([]rune(part)), 280, "part %d", i)
		rejoined = append(rejoined, strings.Fields(segment)...)
	}
	assert.Equal(t, strings.Fields(in), rejoined)
}

func TestAdaptTitleSlug(t *testing.T) {
	article, err := newTestAdapter().Article(Request{
		Content: "Automation is changing how small businesses operate.",
		Title:   "The Future of Small Business Automation",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Future of Small Business Automation", article.Title)
	assert.Equal(t, "future-of-small-business-automation", article.Slug)
	assert.LessOrEqual(t, len(article.Slug), 60)
	assert.Equal(t, []string{"automation", "small business"}, article.Keywords)
	assert.Equal(t, "last-economy-social.jpg", article.HeroImageKey)
}

func TestAdaptKeywordOverride(t *testing.T) {
	override := []string{"go", "tooling"}
	article, err := newTestAdapter().Article(Request{Content: featurePost, Keywords: override})
	require.NoError(t, err)
	assert.Equal(t, override, article.Keywords)

	article.Keywords[0] = "changed"
	assert.Equal(t, "go", override[0])
}

func TestAdaptDeterministic(t *testing.T) {
	a := newTestAdapter()
	first, err := a.Adapt(Request{Content: featurePost})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := a.Adapt(Request{Content: featurePost})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAdaptConcurrent(t *testing.T) {
	a := newTestAdapter()
	want, err := a.Adapt(Request{Content: featurePost})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := a.Adapt(Request{Content: featurePost})
			if assert.NoError(t, err) {
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestAdaptErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrEmptyContent},
		{"whitespace", "  \r\n\n\t ", ErrEmptyContent},
		{"invalid utf-8", "caf\xe9", ErrInvalidEncoding},
	}

	a := newTestAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Adapt(Request{Content: tt.content})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.NotEmpty(t, errors.GetAllHints(err))

			_, err = a.ShortForm(tt.content)
			assert.True(t, errors.Is(err, tt.want))
			_, err = a.Professional(tt.content)
			assert.True(t, errors.Is(err, tt.want))
			_, err = a.Article(Request{Content: tt.content})
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestOnThreadPacked(t *testing.T) {
	var counts []int
	a := newTestAdapter(WithOnThreadPacked(func(n int) { counts = append(counts, n) }))

	_, err := a.ShortForm("short post")
	require.NoError(t, err)
	assert.Empty(t, counts)

	long := strings.Repeat("- "+strings.Repeat("y", 100)+"\n", 10)
	_, err = a.ShortForm(long)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Greater(t, counts[0], 1)
}

func TestCustomTables(t *testing.T) {
	tables := metadata.DefaultTables()
	tables.Keywords = tables.Keywords.Append(metadata.Rule{Match: metadata.Contains("kubernetes"), Values: []string{"cloud"}})

	article, err := newTestAdapter(WithTables(tables)).Article(Request{Content: "Running Kubernetes at home."})
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud"}, article.Keywords)
}

func TestCustomBrand(t *testing.T) {
	brand := transform.Brand{Name: "Example", URL: "https://example.org"}
	article, err := newTestAdapter(WithBrand(brand), WithImagePathPrefix("/img/")).Article(Request{Content: "Hello there."})
	require.NoError(t, err)
	assert.Contains(t, article.BodyMarkdown, "[Example](https://example.org)")
	assert.Contains(t, article.BodyMarkdown, "heroImage: /img/")
}

func TestShortFormCTA(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{"prose is not a link", nil, "Visit Node.js to get started with the runtime.", "Visit Node.js to get started with the runtime."},
		{"bare brand domain", nil, "Learn more at defendresolutions.com today", "→ defendresolutions.com today"},
		{"bare unknown domain", nil, "Check out partner.io today", "Check out partner.io today"},
		{"configured domain", []Option{WithCTADomains("partner.io")}, "Check out partner.io today", "→ partner.io today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestAdapter(tt.opts...).ShortForm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdaptTopic(t *testing.T) {
	content := TopicContent("  Why automation matters ", []string{"Saves time", " ", "Cuts errors"})
	assert.Equal(t, "Why automation matters\n\nKey points:\n- Saves time\n- Cuts errors\n", content)
	assert.Equal(t, "Bare topic", TopicContent("Bare topic", nil))

	result, err := newTestAdapter().AdaptTopic("Why automation matters", []string{"Saves time", "Cuts errors"}, "Automation Wins")
	require.NoError(t, err)
	assert.Equal(t, "Automation Wins", result.Article.Title)
	assert.Equal(t, "automation-wins", result.Article.Slug)
	assert.Contains(t, result.ShortForm, "→ Saves time\n→ Cuts errors")
	assert.Contains(t, result.Article.BodyMarkdown, "Cuts errors")
}

func TestNeedsThread(t *testing.T) {
	a := newTestAdapter()
	assert.False(t, a.NeedsThread(featurePost))
	assert.False(t, a.NeedsThread(strings.Repeat("x", 280)))
	assert.True(t, a.NeedsThread(strings.Repeat("x", 281)))
	assert.False(t, a.NeedsThread("  "+strings.Repeat("x", 280)+"\n\n\n"))
}
