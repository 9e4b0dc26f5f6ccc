// Package listing is the parent of the filter bar: it owns the filter state
// and the course list, and decides which courses match.
package listing

import (
	"strings"

	"eduhub/filterbar"
	"eduhub/models"
)

// Listing implements filterbar.Host over an in-memory catalog.
type Listing struct {
	filterbar.State
	courses []models.Course
}

// New creates a listing over a copy of courses, with every filter empty
func New(courses []models.Course) *Listing {
	return &Listing{courses: append([]models.Course(nil), courses...)}
}

// NumberOfItems is the count shown next to the title.
func (l *Listing) NumberOfItems() int {
	n := 0
	for _, c := range l.courses {
		if l.matches(c) {
			n++
		}
	}
	return n
}

// Total is the size of the unfiltered catalog
func (l *Listing) Total() int {
	return len(l.courses)
}

// Matches returns the courses passing every active filter, in catalog order.
// The sort choice is kept in state but does not reorder the result.
func (l *Listing) Matches() []models.Course {
	var out []models.Course
	for _, c := range l.courses {
		if l.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (l *Listing) matches(c models.Course) bool {
	if !anyIn(l.Selection(filterbar.Language), c.ProgrammingLanguages()...) {
		return false
	}
	if !anyIn(l.Selection(filterbar.Level), c.Level) {
		return false
	}
	if !anyIn(l.Selection(filterbar.ContentType), string(c.ContentType)) {
		return false
	}
	if !anyIn(l.Selection(filterbar.ContentLanguage), c.ContentLanguage) {
		return false
	}
	return MatchesSearch(c, l.SearchTerm())
}

// anyIn reports whether an empty selection or any of values is a member.
func anyIn(sel filterbar.Selection, values ...string) bool {
	if sel.Empty() {
		return true
	}
	for _, v := range values {
		if sel.Has(v) {
			return true
		}
	}
	return false
}

// MatchesSearch is a case-insensitive substring test over title, description and tags.
// A blank term matches everything.
func MatchesSearch(c models.Course, term string) bool {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
