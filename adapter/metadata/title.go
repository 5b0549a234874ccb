package metadata

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tenebris-tech/x2post/adapter/text"
)

// UntitledTitle is used when no title can be derived from the content
const UntitledTitle = "Untitled Post"

var leadingArticlePattern = regexp.MustCompile(`^(?i:the|a|an)\s+`)

// Title derives a post title from the first sentence of the first line:
// cut to max characters, title-cased, leading article removed
func Title(content string, max int) string {
	firstLine := strings.TrimSpace(content)
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	_, firstLine = text.ParseMarker(firstLine)

	title := strings.TrimSpace(text.TrimTerminal(text.FirstSentence(firstLine)))
	title = text.Truncate(title, max)

	// Casers are stateful, one per call keeps Title safe for concurrent use
	title = cases.Title(language.English, cases.NoLower).String(title)
	title = StripArticle(title)

	if title == "" {
		return UntitledTitle
	}
	return title
}

// StripArticle removes a leading "The", "A" or "An"
func StripArticle(title string) string {
	return strings.TrimSpace(leadingArticlePattern.ReplaceAllString(strings.TrimSpace(title), ""))
}
