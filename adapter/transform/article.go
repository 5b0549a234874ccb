package transform

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// Brand is the call-to-action target of an article's conclusion
type Brand struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// DefaultBrand is used when no brand is configured
var DefaultBrand = Brand{Name: "DefendreSolutions.com", URL: "https://defendresolutions.com"}

// Domain returns the host of the brand URL without "www.", or "" when the URL
// has no host
func (b Brand) Domain() string {
	u, err := url.Parse(strings.TrimSpace(b.URL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// SectionHeadings rotate over the key point sections
var SectionHeadings = []string{
	"The Current Landscape",
	"Key Strategies",
	"Implementation Tips",
	"Real-World Applications",
	"Looking Ahead",
}

const (
	introFraming = "In this post, we'll explore this topic in depth and provide actionable insights you can apply immediately."

	sectionElaboration = "This is particularly important because it directly impacts your ability to compete effectively in today's market. " +
		"Consider how this applies to your specific situation and what steps you can take immediately."

	conclusionText = "The key takeaway is clear: taking action today puts you ahead of those who wait. " +
		"Whether you're just getting started or looking to optimize your current approach, the principles we've covered provide a solid foundation."

	// minPointLength is the shortest sentence that can stand as a key point
	minPointLength = 20
)

// ArticleOptions configures the article body
type ArticleOptions struct {
	MaxSections int
	Brand       Brand
}

// ArticleBody expands normalized text into an introduction, up to
// MaxSections key point sections and a conclusion
func ArticleBody(normalized string, opts ArticleOptions) string {
	units := NewPipeline(NewNormalize(), NewSplitUnits(0)).Transform(normalized).Units
	brand := opts.Brand
	if brand.Name == "" {
		brand = DefaultBrand
	}

	var b strings.Builder
	b.WriteString("## Introduction\n\n")
	if lead := leadSentence(units); lead != "" {
		b.WriteString(lead)
		b.WriteString(" ")
	}
	b.WriteString(introFraming)
	b.WriteString("\n\n")

	for i, point := range KeyPoints(units, opts.MaxSections) {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n%s\n\n", SectionHeadings[i%len(SectionHeadings)], point, sectionElaboration)
	}

	b.WriteString("## Conclusion\n\n")
	b.WriteString(conclusionText)
	b.WriteString("\n\n---\n\n")
	fmt.Fprintf(&b, "*Ready to take the next step? Visit [%s](%s) to learn how we can help you achieve your goals.*\n", brand.Name, brand.URL)
	return b.String()
}

// leadSentence returns the first sentence, ending in punctuation
func leadSentence(units []models.ContentUnit) string {
	if len(units) == 0 {
		return ""
	}
	lead := text.FirstSentence(units[0].Text)
	if lead == "" {
		return ""
	}
	if last := lead[len(lead)-1]; last != '.' && last != '!' && last != '?' {
		lead += "."
	}
	return lead
}

// KeyPoints picks up to max points. List items win; without any, the
// longest sentences over minPointLength characters are used, kept in reading
// order.
func KeyPoints(units []models.ContentUnit, max int) []string {
	if max <= 0 {
		return nil
	}

	var points []string
	for _, u := range text.ListItems(units) {
		if len(points) == max {
			return points
		}
		points = append(points, u.Text)
	}
	if len(points) > 0 {
		return points
	}

	type candidate struct {
		text  string
		index int
	}
	var candidates []candidate
	for _, u := range text.ExpandSentences(units, 0) {
		if text.Len(u.Text) > minPointLength {
			candidates = append(candidates, candidate{text: u.Text, index: len(candidates)})
		}
	}
	if len(candidates) > max {
		sort.SliceStable(candidates, func(i, j int) bool {
			return text.Len(candidates[i].text) > text.Len(candidates[j].text)
		})
		candidates = candidates[:max]
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].index < candidates[j].index
		})
	}
	for _, c := range candidates {
		points = append(points, c.text)
	}
	return points
}
