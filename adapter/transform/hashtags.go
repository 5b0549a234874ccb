package transform

import (
	"regexp"
	"strings"

	"github.com/tenebris-tech/x2post/adapter/metadata"
	"github.com/tenebris-tech/x2post/adapter/models"
)

var hashtagPattern = regexp.MustCompile(`(?:^|\s+)#[\p{L}\p{N}_]+`)

// StripHashtags removes inline #tags along with the whitespace before them
type StripHashtags struct{}

// NewStripHashtags creates a new StripHashtags transformation
func NewStripHashtags() *StripHashtags {
	return &StripHashtags{}
}

// Transform removes hashtags
func (s *StripHashtags) Transform(draft *models.Draft) *models.Draft {
	draft.Text = strings.TrimSpace(hashtagPattern.ReplaceAllString(draft.Text, ""))
	return draft
}

// AppendHashtags adds a curated hashtag line when the text has none
type AppendHashtags struct {
	Table       metadata.Table
	PerCategory int
	Max         int
}

// NewAppendHashtags creates a new AppendHashtags transformation
func NewAppendHashtags(table metadata.Table, perCategory, max int) *AppendHashtags {
	return &AppendHashtags{Table: table, PerCategory: perCategory, Max: max}
}

// Transform appends hashtags
func (a *AppendHashtags) Transform(draft *models.Draft) *models.Draft {
	if strings.Contains(draft.Text, "#") {
		return draft
	}
	tags := metadata.Hashtags(a.Table, draft.Text, a.PerCategory, a.Max)
	if len(tags) == 0 {
		return draft
	}
	draft.Text = strings.TrimRight(draft.Text, " \t\n") + "\n\n" + strings.Join(tags, " ")
	return draft
}
