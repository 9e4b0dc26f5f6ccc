package courses

import (
	"html"

	"eduhub/filterbar"

	"github.com/rohanthewiz/element"
)

// MobileHeader is the compact header shown on small screens, with the
// floating button that slides the filter panel in.
type MobileHeader struct {
	Bar filterbar.Snapshot
}

func (m MobileHeader) Render(b *element.Builder) (x any) {
	b.Div("class", "mobile-header", "id", MobileHeaderID).R(
		b.SpanClass("mobile-title").T("Courses and Content"),
		b.SpanClass("mobile-count").F("%d items", m.Bar.NumberOfItems),
		b.Button("type", "button", "class", "mobile-open-btn",
			"data-event", "mobile_open").T("Courses"),
	)
	return
}

// MobilePanel is the full overlay with every checklist inline.
// The "open" class slides it on screen.
type MobilePanel struct {
	Bar filterbar.Snapshot
}

func (m MobilePanel) Render(b *element.Builder) (x any) {
	class := "mobile-panel"
	if m.Bar.MobileOpen {
		class += " open"
	}

	b.Div("class", class, "id", MobilePanelID).R(
		b.DivClass("mobile-panel-header").R(
			b.SpanClass("mobile-panel-title").T("Filters"),
			b.Button("type", "button", "class", "mobile-close-btn",
				"aria-label", "Close filters",
				"data-event", "mobile_close").T("×"),
		),
		b.Input("type", "text", "class", "search-input", "id", MobileSearchID,
			"placeholder", "Search courses...",
			"value", html.EscapeString(m.Bar.SearchTerm),
			"data-event", "search",
			"autocomplete", "off"),
		b.Wrap(func() {
			for _, d := range filterbar.Dimensions {
				b.DivClass("mobile-section").R(
					b.H3Class("mobile-section-title").T(d.Title()),
					element.RenderComponents(b, Checklist{Prefix: "mobile", Dimension: d, Bar: m.Bar}),
				)
			}
		}),
		b.DivClass("mobile-panel-actions").R(
			b.Button("type", "button", "class", "btn btn-primary",
				"data-event", "mobile_apply").T("Apply Filters"),
			b.Button("type", "button", "class", "btn btn-secondary",
				"data-event", "mobile_clear").T("Clear Filters"),
		),
	)
	return
}
