package transform

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FrontMatterFence delimits the metadata header of an article
const FrontMatterFence = "---"

// FrontMatter is the article metadata header. Field order is fixed.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Keywords    []string `yaml:"keywords,flow"`
	Slug        string   `yaml:"slug"`
	HeroImage   string   `yaml:"heroImage"`
}

// Render encodes the header between fences, followed by a blank line
func (f FrontMatter) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(FrontMatterFence + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", errors.Wrap(err, "encoding front matter")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "encoding front matter")
	}
	buf.WriteString(FrontMatterFence + "\n\n")
	return buf.String(), nil
}

// ParseFrontMatter splits a document into its header and body
func ParseFrontMatter(doc string) (FrontMatter, string, error) {
	var fm FrontMatter
	if !strings.HasPrefix(doc, FrontMatterFence+"\n") {
		return fm, doc, errors.New("document has no front matter")
	}
	rest := doc[len(FrontMatterFence)+1:]
	end := strings.Index(rest, "\n"+FrontMatterFence+"\n")
	if end < 0 {
		return fm, doc, errors.New("front matter is not closed")
	}
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &fm); err != nil {
		return fm, doc, errors.Wrap(err, "decoding front matter")
	}
	body := strings.TrimPrefix(rest[end+len(FrontMatterFence)+2:], "\n")
	return fm, body, nil
}
