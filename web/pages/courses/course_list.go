package courses

import (
	"html"
	"strings"

	"eduhub/models"

	"github.com/rohanthewiz/element"
)

// CourseList renders the matching courses under the results anchor.
type CourseList struct {
	Courses []models.Course
	Total   int
}

func (cl CourseList) Render(b *element.Builder) (x any) {
	b.Div("class", "course-list", "id", ResultsID).R(
		b.Wrap(func() {
			if len(cl.Courses) == 0 {
				b.DivClass("empty-state").R(
					b.P().T("No courses match these filters."),
					b.PClass("empty-hint").F("%d courses in the catalog", cl.Total),
				)
				return
			}
			element.ForEach(cl.Courses, func(c models.Course) {
				element.RenderComponents(b, CourseCard{Course: c})
			})
		}),
	)
	return
}

// CourseCard is one entry of the list
type CourseCard struct {
	Course models.Course
}

func (cc CourseCard) Render(b *element.Builder) (x any) {
	c := cc.Course
	b.Article("class", "course-card", "data-slug", html.EscapeString(c.Slug)).R(
		b.H3Class("course-title").R(
			cc.renderTitle(b),
		),
		b.PClass("course-description").T(html.EscapeString(c.Description)),
		b.DivClass("course-meta").R(
			b.Span("class", "badge badge-level").T(html.EscapeString(c.Level)),
			b.Span("class", "badge badge-type").T(html.EscapeString(string(c.ContentType))),
			b.Span("class", "badge badge-lang").T(html.EscapeString(c.ContentLanguage)),
			b.Span("class", "badge badge-code").T(html.EscapeString(strings.Join(c.ProgrammingLanguages(), ", "))),
		),
	)
	return
}

func (cc CourseCard) renderTitle(b *element.Builder) (x any) {
	title := html.EscapeString(cc.Course.Title)
	if cc.Course.Link == "" {
		b.T(title)
		return
	}
	b.A("href", html.EscapeString(cc.Course.Link), "target", "_blank", "rel", "noopener").T(title)
	return
}
