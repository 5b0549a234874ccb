// Package metadata derives titles, slugs, summaries, tags and image keys
// from post content using fixed lookup tables
package metadata

import (
	"regexp"
	"strings"
)

// Matcher reports whether a rule applies to a piece of content.
// Content is passed already lowercased.
type Matcher interface {
	Match(lower string) bool
}

// Contains matches a case-insensitive substring
type Contains string

// Match implements Matcher
func (c Contains) Match(lower string) bool {
	return strings.Contains(lower, strings.ToLower(string(c)))
}

// wordMatcher matches whole words only
type wordMatcher struct {
	pattern *regexp.Regexp
	key     string
}

// Word matches key as a whole word, case-insensitively.
// Short keys such as "ai" use this so that "again" does not match.
func Word(key string) Matcher {
	return &wordMatcher{
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`),
		key:     key,
	}
}

// Match implements Matcher
func (w *wordMatcher) Match(lower string) bool {
	return w.pattern.MatchString(lower)
}

// String returns the matched key
func (w *wordMatcher) String() string {
	return w.key
}

// Any matches when any of its matchers does
type Any []Matcher

// Match implements Matcher
func (a Any) Match(lower string) bool {
	for _, m := range a {
		if m.Match(lower) {
			return true
		}
	}
	return false
}

// Rule maps a matcher to the values it contributes. Rules are evaluated in
// table order, which is also the tie-break.
type Rule struct {
	Match  Matcher
	Values []string
}

// Table is an ordered rule list plus the values used when nothing matches
type Table struct {
	Rules    []Rule
	Defaults []string
}

// Matching returns the rules that apply to content, in table order
func (t Table) Matching(content string) []Rule {
	lower := strings.ToLower(content)
	var matched []Rule
	for _, r := range t.Rules {
		if r.Match != nil && r.Match.Match(lower) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Append returns a copy of the table with extra rules at the end
func (t Table) Append(rules ...Rule) Table {
	out := Table{
		Rules:    make([]Rule, 0, len(t.Rules)+len(rules)),
		Defaults: t.Defaults,
	}
	out.Rules = append(out.Rules, t.Rules...)
	out.Rules = append(out.Rules, rules...)
	return out
}

// Tables groups the lookup tables used by the synthesizer
type Tables struct {
	Keywords Table
	Hashtags Table
	Images   Table
}

// DefaultTables returns the built-in keyword, hashtag and hero image tables
func DefaultTables() Tables {
	return Tables{
		Keywords: Table{
			Rules: []Rule{
				{Any{Word("ai"), Contains("artificial intelligence")}, []string{"ai"}},
				{Any{Contains("automation"), Contains("automate")}, []string{"automation"}},
				{Any{Contains("small business"), Word("smb")}, []string{"small business"}},
				{Any{Contains("veteran"), Contains("military")}, []string{"veteran"}},
				{Any{Contains("cybersecurity"), Contains("security")}, []string{"cybersecurity"}},
				{Any{Contains("development"), Contains("software"), Word("code")}, []string{"development"}},
			},
			Defaults: []string{"technology", "business"},
		},
		Hashtags: Table{
			Rules: []Rule{
				{Word("ai"), []string{"#AI", "#ArtificialIntelligence", "#MachineLearning"}},
				{Contains("automation"), []string{"#Automation", "#BusinessAutomation", "#Productivity"}},
				{Contains("small business"), []string{"#SmallBusiness", "#SMB", "#Entrepreneurship"}},
				{Contains("veteran"), []string{"#Veteran", "#VeteranOwned", "#MilitaryTransition"}},
				{Contains("tech"), []string{"#Technology", "#TechInnovation", "#DigitalTransformation"}},
				{Contains("cybersecurity"), []string{"#Cybersecurity", "#InfoSec", "#DataSecurity"}},
			},
			Defaults: []string{"#BusinessGrowth", "#Innovation", "#TechTrends"},
		},
		Images: Table{
			Rules: []Rule{
				{Contains("ai"), []string{"ai-tools-social.jpg"}},
				{Contains("automation"), []string{"last-economy-social.jpg"}},
				{Contains("veteran"), []string{"defense-tech-social.jpg"}},
				{Contains("code"), []string{"claude-code-social.jpg"}},
				{Contains("business"), []string{"last-economy-social.jpg"}},
			},
			Defaults: []string{"ai-tools-social.jpg"},
		},
	}
}
