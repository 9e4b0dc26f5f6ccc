package filterbar

import "strings"

// Dimension names one filterable attribute of a course.
type Dimension int

const (
	Language Dimension = iota
	Level
	ContentType
	ContentLanguage
)

// Dimensions lists every dimension in the order the bar renders them.
var Dimensions = []Dimension{Language, Level, ContentType, ContentLanguage}

// Fixed option vocabularies. The values must match the catalog data exactly.
var (
	LanguageOptions        = []string{"Motoko", "Rust", "TypeScript", "None"}
	ContentLanguageOptions = []string{"English", "Spanish", "Turkish"}
	LevelOptions           = []string{"Beginner", "Intermediate", "Expert"}
	ContentTypeOptions     = []string{"text", "video"}
)

// String returns the identifier used in markup and on the wire.
func (d Dimension) String() string {
	switch d {
	case Language:
		return "language"
	case Level:
		return "level"
	case ContentType:
		return "contentType"
	case ContentLanguage:
		return "contentLanguage"
	}
	return ""
}

// Title is the human label shown on the dropdown trigger.
func (d Dimension) Title() string {
	switch d {
	case Language:
		return "Language"
	case Level:
		return "Level"
	case ContentType:
		return "Content Type"
	case ContentLanguage:
		return "Content Language"
	}
	return ""
}

// Options returns the fixed vocabulary for the dimension.
func (d Dimension) Options() []string {
	switch d {
	case Language:
		return LanguageOptions
	case Level:
		return LevelOptions
	case ContentType:
		return ContentTypeOptions
	case ContentLanguage:
		return ContentLanguageOptions
	}
	return nil
}

func (d Dimension) valid() bool {
	return d >= Language && d <= ContentLanguage
}

// ParseDimension accepts the wire identifier of a dimension, case-insensitively.
func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return 0, false
}

// SortChoice orders the listing. It is stored but not yet applied to any rendering.
type SortChoice string

const (
	SortRelevance SortChoice = "Relevance"
	SortAToZ      SortChoice = "A to Z"
	SortZToA      SortChoice = "Z to A"
)

// SortOptions lists the sort choices in display order.
var SortOptions = []SortChoice{SortRelevance, SortAToZ, SortZToA}

// ParseSortChoice matches s against the sort labels, case-insensitively.
func ParseSortChoice(s string) (SortChoice, bool) {
	for _, c := range SortOptions {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
