package transform

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/tenebris-tech/x2post/adapter/models"
)

// DefaultQuestions is the pool engagement questions are drawn from
var DefaultQuestions = []string{
	"What's your take on this?",
	"Have you experienced this in your business?",
	"What would you add to this list?",
	"What's been your experience?",
	"How are you approaching this challenge?",
}

// EngagementQuestion closes a post with a question picked by a hash of the
// text, so the same text always gets the same question
type EngagementQuestion struct {
	Questions []string
}

// NewEngagementQuestion creates a new EngagementQuestion transformation
func NewEngagementQuestion(questions []string) *EngagementQuestion {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	return &EngagementQuestion{Questions: questions}
}

// Pick returns the question for s
func (e *EngagementQuestion) Pick(s string) string {
	idx := xxhash.Sum64String(s) % uint64(len(e.Questions))
	return e.Questions[idx]
}

// Transform appends a question unless the text already asks one
func (e *EngagementQuestion) Transform(draft *models.Draft) *models.Draft {
	if strings.Contains(draft.Text, "?") {
		return draft
	}
	draft.Text = strings.TrimRight(draft.Text, " \t\n") + "\n\n" + e.Pick(draft.Text)
	return draft
}
