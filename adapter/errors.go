package adapter

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/tenebris-tech/x2post/adapter/text"
)

var (
	// ErrEmptyContent is returned when content is empty after normalization
	ErrEmptyContent = errors.New("empty content")
	// ErrInvalidEncoding is returned when content is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// validate normalizes content and checks the preconditions shared by every
// surface
func validate(content string) (string, error) {
	if !utf8.ValidString(content) {
		return "", errors.WithHint(
			errors.WithStack(ErrInvalidEncoding),
			"content must be valid UTF-8 text",
		)
	}
	normalized := text.Normalize(content)
	if normalized == "" {
		return "", errors.WithHint(
			errors.WithStack(ErrEmptyContent),
			"content must contain at least one non-whitespace character",
		)
	}
	return normalized, nil
}
