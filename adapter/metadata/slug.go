package metadata

import (
	"regexp"
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// UntitledSlug is used when a title reduces to nothing
const UntitledSlug = "untitled"

var (
	nonWordPattern   = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorPattern = regexp.MustCompile(`[\s_]+`)
	dashRunPattern   = regexp.MustCompile(`-+`)
	nonSlugPattern   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify converts text to a URL-safe slug made of [a-z0-9-], with no
// leading, trailing or repeated hyphens. Slugify(Slugify(s)) == Slugify(s).
// Letters outside ASCII are transliterated.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = nonWordPattern.ReplaceAllString(slug, "")
	slug = separatorPattern.ReplaceAllString(slug, "-")

	if !isASCII(slug) {
		slug = goslug.Make(slug)
		slug = strings.ReplaceAll(slug, "_", "-")
	}
	slug = nonSlugPattern.ReplaceAllString(slug, "")

	slug = dashRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugForTitle slugifies a title after removing its leading article,
// falling back to UntitledSlug
func SlugForTitle(title string) string {
	if slug := Slugify(StripArticle(title)); slug != "" {
		return slug
	}
	return UntitledSlug
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
