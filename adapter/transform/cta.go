package transform

import (
	"regexp"
	"strings"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// DefaultCTAPhrase introduces an expanded call-to-action link
const DefaultCTAPhrase = "Learn more at"

const (
	// link matches a bare or schemed web address; group 1 is the address
	// without scheme or "www."
	link = `(?:https?://)?(?:www\.)?((?:[a-z0-9-]+\.)+[a-z]{2,}(?:/\S*)?)`

	// schemedLink only matches addresses written with a scheme or "www."
	schemedLink = `(?:https?://(?:www\.)?|www\.)((?:[a-z0-9-]+\.)+[a-z]{2,}(?:/\S*)?)`

	ctaLead = `(?i)\b(?:visit|learn more at|check out)\s+`
)

var (
	ctaPattern      = regexp.MustCompile(ctaLead + schemedLink)
	shortCTAPattern = regexp.MustCompile(`(?i)` + text.Arrow + `[ \t]*` + link)
)

// domainCTAPattern matches calls to action pointing at one of domains even
// when written bare, as in "Visit example.com"
func domainCTAPattern(domains []string) *regexp.Regexp {
	var quoted []string
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), "www.")
		if d != "" {
			quoted = append(quoted, regexp.QuoteMeta(d))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(ctaLead + `(?:https?://)?(?:www\.)?((?:` + strings.Join(quoted, "|") + `)(?:/\S*|\b))`)
}

// trailingPunctuation is kept outside the link when a sentence ends on it
const trailingPunctuation = ".,;:!?)"

// rewriteLinks replaces every match of pattern with prefix plus the bare link
func rewriteLinks(s string, pattern *regexp.Regexp, prefix string) string {
	var out strings.Builder
	last := 0
	for _, m := range pattern.FindAllStringSubmatchIndex(s, -1) {
		addr := s[m[2]:m[3]]
		trimmed := strings.TrimRight(addr, trailingPunctuation)
		out.WriteString(s[last:m[0]])
		out.WriteString(prefix)
		out.WriteString(trimmed)
		out.WriteString(addr[len(trimmed):])
		last = m[1]
	}
	out.WriteString(s[last:])
	return out.String()
}

// ShortenCTA rewrites "Visit https://www.example.com/page" style calls to
// action into the canonical "→ example.com/page". Bare addresses such as
// "Visit example.com" are only rewritten for the known Domains, so prose like
// "Visit Node.js" is left alone.
type ShortenCTA struct {
	Domains []string

	domainPattern *regexp.Regexp
}

// NewShortenCTA creates a new ShortenCTA transformation
func NewShortenCTA(domains ...string) *ShortenCTA {
	return &ShortenCTA{
		Domains:       domains,
		domainPattern: domainCTAPattern(domains),
	}
}

// Transform shortens calls to action
func (s *ShortenCTA) Transform(draft *models.Draft) *models.Draft {
	draft.Text = rewriteLinks(draft.Text, ctaPattern, text.Arrow+" ")
	if s.domainPattern != nil {
		draft.Text = rewriteLinks(draft.Text, s.domainPattern, text.Arrow+" ")
	}
	return draft
}

// ExpandCTA turns the canonical "→ example.com" back into professional phrasing
type ExpandCTA struct {
	Phrase string
}

// NewExpandCTA creates a new ExpandCTA transformation
func NewExpandCTA(phrase string) *ExpandCTA {
	if phrase == "" {
		phrase = DefaultCTAPhrase
	}
	return &ExpandCTA{Phrase: phrase}
}

// Transform expands calls to action
func (e *ExpandCTA) Transform(draft *models.Draft) *models.Draft {
	draft.Text = rewriteLinks(draft.Text, shortCTAPattern, e.Phrase+" ")
	return draft
}
