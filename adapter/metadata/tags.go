package metadata

// Keywords returns the canonical tag of every matching keyword rule, in
// table order, or the table defaults when nothing matches
func Keywords(t Table, content string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, r := range t.Matching(content) {
		for _, v := range r.Values {
			if !seen[v] {
				seen[v] = true
				tags = append(tags, v)
			}
		}
	}
	if len(tags) == 0 {
		return append([]string(nil), t.Defaults...)
	}
	return tags
}

// Hashtags takes at most perCategory tags from each matching rule and caps
// the result at max. The defaults are used when no rule matches. Negative
// limits count as zero.
func Hashtags(t Table, content string, perCategory, max int) []string {
	perCategory = clampZero(perCategory)
	max = clampZero(max)

	var tags []string
	seen := make(map[string]bool)
	for _, r := range t.Matching(content) {
		values := r.Values
		if len(values) > perCategory {
			values = values[:perCategory]
		}
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				tags = append(tags, v)
			}
		}
	}
	if len(tags) == 0 {
		tags = append([]string(nil), t.Defaults...)
	}
	if len(tags) > max {
		tags = tags[:max]
	}
	return tags
}

// HeroImage returns the image key of the first matching rule, else the
// table default
func HeroImage(t Table, content string) string {
	for _, r := range t.Matching(content) {
		if len(r.Values) > 0 {
			return r.Values[0]
		}
	}
	if len(t.Defaults) > 0 {
		return t.Defaults[0]
	}
	return ""
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
