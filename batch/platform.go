package batch

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Platform names one rendering of adapted content
type Platform string

// Supported platforms
const (
	PlatformX        Platform = "x"
	PlatformLinkedIn Platform = "linkedin"
	PlatformBlog     Platform = "blog"
)

// AllPlatforms lists every platform in output order
var AllPlatforms = []Platform{PlatformX, PlatformLinkedIn, PlatformBlog}

// Suffix returns the output file suffix for the platform
func (p Platform) Suffix() string {
	switch p {
	case PlatformX:
		return ".x.txt"
	case PlatformLinkedIn:
		return ".linkedin.txt"
	case PlatformBlog:
		return ".blog.md"
	}
	return ""
}

// ParsePlatform converts a platform name, accepting "twitter" for x
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x", "twitter":
		return PlatformX, nil
	case "linkedin":
		return PlatformLinkedIn, nil
	case "blog":
		return PlatformBlog, nil
	}
	return "", errors.WithHint(
		errors.Newf("unknown platform %q", name),
		"valid platforms are x, linkedin and blog",
	)
}

// ParsePlatforms converts a list of platform names, dropping duplicates
func ParsePlatforms(names []string) ([]Platform, error) {
	var platforms []Platform
	seen := make(map[Platform]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			p, err := ParsePlatform(part)
			if err != nil {
				return nil, err
			}
			if !seen[p] {
				seen[p] = true
				platforms = append(platforms, p)
			}
		}
	}
	return platforms, nil
}

// isGenerated reports whether name is a file this package writes
func isGenerated(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range AllPlatforms {
		if strings.HasSuffix(lower, p.Suffix()) {
			return true
		}
	}
	return false
}
