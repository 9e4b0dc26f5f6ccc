package models

import (
	"database/sql"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// ContentType is the delivery format of a course. The set is owned by the
// catalog; the filter bar offers the values it knows about.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentVideo ContentType = "video"
)

// ContentTypes lists the known content types in display order.
func ContentTypes() []ContentType {
	return []ContentType{ContentText, ContentVideo}
}

// NoLanguage is the programming-language value of a course that teaches none.
const NoLanguage = "none"

// Course is one entry of the education catalog
type Course struct {
	ID              int64       `json:"id" yaml:"-"`
	Slug            string      `json:"slug" yaml:"slug"`
	Title           string      `json:"title" yaml:"title"`
	Description     string      `json:"description,omitempty" yaml:"description"`
	Link            string      `json:"link,omitempty" yaml:"link"`
	Languages       []string    `json:"languages" yaml:"languages"`
	ContentLanguage string      `json:"content_language" yaml:"content_language"`
	Level           string      `json:"level" yaml:"level"`
	ContentType     ContentType `json:"content_type" yaml:"content_type"`
	Tags            []string    `json:"tags,omitempty" yaml:"tags"`
	CreatedAt       time.Time   `json:"created_at" yaml:"-"`
}

// ProgrammingLanguages returns the lower-cased languages, "none" when the course has none.
func (c Course) ProgrammingLanguages() []string {
	if len(c.Languages) == 0 {
		return []string{NoLanguage}
	}
	out := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		out = append(out, strings.ToLower(l))
	}
	return out
}

// Validate checks the fields every stored course needs
func (c Course) Validate() error {
	if strings.TrimSpace(c.Slug) == "" {
		return serr.New("course slug is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return serr.New("course title is required: " + c.Slug)
	}
	if c.ContentType == "" {
		return serr.New("course content type is required: " + c.Slug)
	}
	if c.Link != "" && !webLink(c.Link) {
		return serr.New("course link must be an absolute http(s) URL: " + c.Slug)
	}
	return nil
}

// webLink reports whether link is an absolute http or https URL
func webLink(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}

// normalized lower-cases the filterable attributes so they compare against option values
func (c Course) normalized() Course {
	c.Slug = strings.TrimSpace(c.Slug)
	c.Languages = lowerAll(c.Languages)
	c.ContentLanguage = strings.ToLower(strings.TrimSpace(c.ContentLanguage))
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.ContentType = ContentType(strings.ToLower(strings.TrimSpace(string(c.ContentType))))
	return c
}

const selectCourses = `SELECT id, slug, title, description, link, languages,
	content_language, level, content_type, tags, created_at FROM courses`

const insertCourseWithID = `INSERT INTO courses (id, slug, title, description, link, languages,
	content_language, level, content_type, tags, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updateCourse = `UPDATE courses SET title = ?, description = ?, link = ?, languages = ?,
	content_language = ?, level = ?, content_type = ?, tags = ? WHERE slug = ?`

func (c Course) insertArgsWithID() []any {
	return []any{c.ID, c.Slug, c.Title, c.Description, c.Link, listJSON(c.Languages),
		c.ContentLanguage, c.Level, string(c.ContentType), listJSON(c.Tags), c.CreatedAt}
}

// upsertMu keeps id allocation and insert atomic across both databases
var upsertMu sync.Mutex

// UpsertCourse inserts the course or, when the slug exists, updates it in place.
// It returns the stored course.
func UpsertCourse(c Course) (*Course, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c = c.normalized()

	upsertMu.Lock()
	defer upsertMu.Unlock()

	existing, err := GetCourseBySlug(c.Slug)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		err = WriteThrough(updateCourse, c.Title, c.Description, c.Link, listJSON(c.Languages),
			c.ContentLanguage, c.Level, string(c.ContentType), listJSON(c.Tags), c.Slug)
		if err != nil {
			return nil, serr.Wrap(err, "failed to update course "+c.Slug)
		}
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		return &c, nil
	}

	row, err := QueryRowFromCache("SELECT COALESCE(MAX(id), 0) + 1 FROM courses")
	if err != nil {
		return nil, err
	}
	if err := row.Scan(&c.ID); err != nil {
		return nil, serr.Wrap(err, "failed to allocate course id")
	}
	c.CreatedAt = time.Now().UTC()

	if err := WriteThrough(insertCourseWithID, c.insertArgsWithID()...); err != nil {
		return nil, serr.Wrap(err, "failed to insert course "+c.Slug)
	}

	logger.Debug("Course stored", "id", c.ID, "slug", c.Slug)
	return &c, nil
}

// GetCourseBySlug returns nil, nil when no course has the slug
func GetCourseBySlug(slug string) (*Course, error) {
	rows, err := ReadFromCache(selectCourses+" WHERE slug = ?", slug)
	if err != nil {
		return nil, serr.Wrap(err, "failed to query course "+slug)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

// ListCourses returns the whole catalog ordered by id.
// Filtering is the listing's job; the store never receives filter arguments.
func ListCourses() ([]Course, error) {
	rows, err := ReadFromCache(selectCourses + " ORDER BY id")
	if err != nil {
		return nil, serr.Wrap(err, "failed to list courses")
	}
	defer rows.Close()

	return scanCourses(rows)
}

// CountCourses returns the number of stored courses
func CountCourses() (int, error) {
	row, err := QueryRowFromCache("SELECT COUNT(*) FROM courses")
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, serr.Wrap(err, "failed to count courses")
	}
	return n, nil
}

func scanCourses(rows *sql.Rows) ([]Course, error) {
	var courses []Course
	for rows.Next() {
		var c Course
		var description, link, languages, contentLanguage, level, contentType, tags sql.NullString
		err := rows.Scan(&c.ID, &c.Slug, &c.Title, &description, &link, &languages,
			&contentLanguage, &level, &contentType, &tags, &c.CreatedAt)
		if err != nil {
			logger.LogErr(err, "failed to scan course")
			continue
		}
		c.Description = description.String
		c.Link = link.String
		c.Languages = listFromJSON(languages.String)
		c.ContentLanguage = contentLanguage.String
		c.Level = level.String
		c.ContentType = ContentType(contentType.String)
		c.Tags = listFromJSON(tags.String)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Wrap(err, "failed to iterate courses")
	}
	return courses, nil
}

// listJSON encodes a list column as a JSON array so entries may contain commas
func listJSON(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// listFromJSON decodes a list column written by listJSON
func listFromJSON(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode list column"), "bad catalog row", "value", s)
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func lowerAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
