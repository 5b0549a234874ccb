package models

// Article is the long-form blog rendering plus its generated metadata
type Article struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
	Hashtags     []string `json:"hashtags"`
	HeroImageKey string   `json:"hero_image_key"`
	// BodyMarkdown is the full document: front matter followed by the body
	BodyMarkdown string `json:"body_markdown"`
	// WordCount counts the body only, front matter excluded
	WordCount int `json:"word_count"`
}

// Result holds one rendering per target surface
type Result struct {
	ShortForm        string  `json:"short_form"`
	ProfessionalForm string  `json:"professional_form"`
	Article          Article `json:"article"`
	Original         string  `json:"original"`
}
