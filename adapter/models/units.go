// Package models holds the data types shared by the adaptation pipeline
package models

// UnitKind classifies a ContentUnit
type UnitKind int

const (
	// KindParagraph is a plain line of prose
	KindParagraph UnitKind = iota
	// KindBullet is a line that started with a bullet marker
	KindBullet
	// KindNumbered is a line that started with an ordinal marker such as "3."
	KindNumbered
	// KindSentence is a sentence split out of a long paragraph
	KindSentence
)

// String returns the lowercase name of the kind
func (k UnitKind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	case KindSentence:
		return "sentence"
	default:
		return "paragraph"
	}
}

// IsListItem reports whether the unit came from a bullet or numbered line
func (k UnitKind) IsListItem() bool {
	return k == KindBullet || k == KindNumbered
}

// ContentUnit is one semantically distinct fragment of source text.
// Text never includes the list marker.
type ContentUnit struct {
	Kind UnitKind
	Text string
	// Line is the zero-based line index the unit was taken from
	Line int
}

// Draft is the working document a transformation pipeline rewrites
type Draft struct {
	Text  string
	Units []ContentUnit
}
