package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenebris-tech/x2post/adapter/models"
	"github.com/tenebris-tech/x2post/adapter/thread"
)

// End-to-end tests for the x2post CLI using the files in testdata/

var partPrefix = regexp.MustCompile(`^\d+/ `)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func adaptJSON(t *testing.T, args ...string) models.Result {
	t.Helper()
	out, err := execute(t, "", append([]string{"--json"}, args...)...)
	require.NoError(t, err)

	var result models.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestTestdataFiles(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantThread bool
		numbered   bool
		contains   []string
		slug       string
		keywords   []string
		heroImage  string
	}{
		{
			name:      "feature post",
			file:      "testdata/feature-post.txt",
			contains:  []string{"→ Saves time\n→ Saves money\n→ Easy to use", "→ example.com/defendresolutions today"},
			slug:      "check-out-our-new-feature",
			keywords:  []string{"technology", "business"},
			heroImage: "ai-tools-social.jpg",
		},
		{
			name:       "long paragraph",
			file:       "testdata/long-paragraph.txt",
			wantThread: true,
			numbered:   true,
			contains:   []string{"1/ lorem ipsum"},
			slug:       "lorem-ipsum-dolor-sit-amet-consectetur-adipiscing-elit-lo",
			keywords:   []string{"technology", "business"},
			heroImage:  "ai-tools-social.jpg",
		},
		{
			name:       "automation guide",
			file:       "testdata/automation-guide.md",
			wantThread: true,
			contains:   []string{"→ Start with the tasks", "→ defendresolutions.com/automation."},
			slug:       "future-of-small-business-automation",
			keywords:   []string{"automation", "small business", "veteran"},
			heroImage:  "last-economy-social.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := os.Stat(tt.file); os.IsNotExist(err) {
				t.Skipf("Test file not available: %s", tt.file)
			}

			result := adaptJSON(t, "--file", tt.file)

			parts := strings.Split(result.ShortForm, thread.DefaultSeparator)
			assert.Equal(t, tt.wantThread, len(parts) > 1, "parts: %d", len(parts))
			for i, part := range parts {
				assert.LessOrEqual(t, len([]rune(part)), 280, "part %d", i)
				assert.Equal(t, tt.numbered, partPrefix.MatchString(part), "part %d: %q", i, part)
				assert.NotContains(t, part, "#")
			}
			for _, want := range tt.contains {
				assert.Contains(t, result.ShortForm, want)
			}

			assert.Equal(t, tt.slug, result.Article.Slug)
			assert.LessOrEqual(t, len(result.Article.Slug), 60)
			assert.Equal(t, tt.keywords, result.Article.Keywords)
			assert.Equal(t, tt.heroImage, result.Article.HeroImageKey)
			assert.True(t, strings.HasPrefix(result.Article.BodyMarkdown, "---\n"))
			assert.NotEmpty(t, result.ProfessionalForm)
		})
	}
}

func TestContentFromArguments(t *testing.T) {
	result := adaptJSON(t, "--title", "The Future of Small Business Automation", "Automation", "helps", "small", "businesses.")
	assert.Equal(t, "Automation helps small businesses.", result.Original)
	assert.Equal(t, "future-of-small-business-automation", result.Article.Slug)
}

func TestContentFromStdin(t *testing.T) {
	out, err := execute(t, "Hello from stdin.", "--json", "--file", "-")
	require.NoError(t, err)

	var result models.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Hello from stdin.", result.ShortForm)
}

func TestKeywordsAndTopicPoints(t *testing.T) {
	result := adaptJSON(t,
		"--keyword", "go", "--keyword", "tooling",
		"--topic-point", "Saves time", "--topic-point", "Cuts errors",
		"Why automation matters",
	)
	assert.Equal(t, []string{"go", "tooling"}, result.Article.Keywords)
	assert.Contains(t, result.ShortForm, "Key points:\n→ Saves time\n→ Cuts errors")
}

func TestJSONOutputPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		present  []string
		absent   []string
	}{
		{"x only", "x", []string{"short_form", "original"}, []string{"professional_form", "article"}},
		{"linkedin and blog", "linkedin,blog", []string{"professional_form", "article", "original"}, []string{"short_form"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "--json", "-p", tt.platform, "--file", "testdata/feature-post.txt")
			require.NoError(t, err)

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(out), &fields))
			for _, key := range tt.present {
				assert.Contains(t, fields, key)
			}
			for _, key := range tt.absent {
				assert.NotContains(t, fields, key)
			}
		})
	}

	result := adaptJSON(t, "-p", "x", "--file", "testdata/feature-post.txt")
	assert.Contains(t, result.ShortForm, "→ Saves time")
	assert.Empty(t, result.Article.Slug)
}

func TestTextOutputPlatforms(t *testing.T) {
	out, err := execute(t, "", "-p", "x", "--file", "testdata/feature-post.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "=== X ===")
	assert.Contains(t, out, "→ Saves time")
	assert.NotContains(t, out, "=== LinkedIn ===")
	assert.NotContains(t, out, "=== Blog ===")

	out, err = execute(t, "", "-p", "linkedin,blog", "--file", "testdata/long-paragraph.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "=== LinkedIn ===")
	assert.Contains(t, out, "=== Blog ===")
	assert.Contains(t, out, "Slug:     lorem-ipsum")
	assert.NotContains(t, out, "=== X")

	out, err = execute(t, "", "--file", "testdata/long-paragraph.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "=== X (thread) ===")
}

func TestSaveArticle(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "--save", "--output-dir", dir, "--file", "testdata/feature-post.txt")
	require.NoError(t, err)

	path := filepath.Join(dir, "check-out-our-new-feature.md")
	assert.Contains(t, out, "Saved: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\ntitle: Check Out Our New Feature\n"))
	assert.Contains(t, string(data), "## Conclusion")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no content", nil},
		{"empty content", []string{"   "}},
		{"missing file", []string{"--file", "testdata/does-not-exist.txt"}},
		{"unknown platform", []string{"-p", "fax", "hello"}},
		{"missing config", []string{"--config", "testdata/missing.yaml", "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)

			var buf bytes.Buffer
			printError(&buf, err)
			assert.True(t, strings.HasPrefix(buf.String(), "Error: "))
		})
	}
}
