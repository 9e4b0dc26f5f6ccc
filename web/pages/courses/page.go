// Package courses renders the course listing page and the fragments the
// browser swaps in after each filter event.
package courses

import (
	"eduhub/visit"

	"github.com/rohanthewiz/element"
)

// Page is the full listing page for one mounted view
type Page struct {
	ViewID string
	Token  string
	State  visit.Result
}

// Render generates the complete HTML for the page
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.renderHead(b),
		p.renderBody(b),
	)

	return b.String()
}

func (p Page) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T("Courses and Content"),
		b.Link("rel", "stylesheet", "href", "/static/css/eduhub.css?v=1"),
		// MsgPack for compact event posts; the shim falls back to JSON without it
		b.Script("src", "/static/js/msgpack.js?v=1").R(),
	)
}

func (p Page) renderBody(b *element.Builder) any {
	bar := p.State.Bar
	return b.Body("data-view-id", p.ViewID, "data-token", p.Token).R(
		b.Main("class", "courses-page", "id", PageID).R(
			element.RenderComponents(b,
				MobileHeader{Bar: bar},
				FilterBar{Bar: bar},
			),
			// Empty anchor div needs R() termination
			b.Div("class", "results-anchor", "id", AnchorID).R(),
			element.RenderComponents(b,
				CourseList{Courses: p.State.Courses, Total: p.State.Total},
				MobilePanel{Bar: bar},
			),
		),
		b.Script("src", "/static/js/filterbar.js?v=1").R(),
	)
}

// Fragments renders every region that can change after an event, keyed by element id.
func Fragments(r visit.Result) map[string]string {
	return map[string]string{
		BarID:          render(FilterBar{Bar: r.Bar}),
		MobileHeaderID: render(MobileHeader{Bar: r.Bar}),
		MobilePanelID:  render(MobilePanel{Bar: r.Bar}),
		ResultsID:      render(CourseList{Courses: r.Courses, Total: r.Total}),
	}
}

func render(c element.Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}
