package courses

import (
	"html"

	"eduhub/filterbar"

	"github.com/rohanthewiz/element"
)

// FilterBar is the desktop rendering: header with count and clear action,
// one dropdown per dimension and the search input.
type FilterBar struct {
	Bar filterbar.Snapshot
}

// Render implements the element.Component interface
func (f FilterBar) Render(b *element.Builder) (x any) {
	b.Div("class", "filter-bar", "id", BarID).R(
		b.DivClass("filter-bar-header").R(
			b.H1Class("filter-bar-title").T("Courses and Content"),
			b.Span("class", "items-count", "id", CountID).F("%d items", f.Bar.NumberOfItems),
			f.renderClear(b),
		),
		b.Div("class", "select-boxes", "id", ContainerID, "data-open", f.Bar.Open.String()).R(
			b.Wrap(func() {
				for _, d := range filterbar.Dimensions {
					element.RenderComponents(b, Dropdown{Dimension: d, Bar: f.Bar})
				}
			}),
			b.DivClass("search-wrapper").R(
				b.Input("type", "text", "class", "search-input", "id", SearchID,
					"placeholder", "Search in courses",
					"value", html.EscapeString(f.Bar.SearchTerm),
					"data-event", "search",
					"autocomplete", "off"),
			),
		),
	)
	return
}

// renderClear shows the action only while some filter or search term is set
func (f FilterBar) renderClear(b *element.Builder) (x any) {
	if !f.Bar.ClearVisible() {
		return
	}
	b.Button("type", "button", "class", "btn-clear-filters", "id", ClearID,
		"data-event", "clear").T("Delete all filters")
	return
}

// Dropdown is one trigger and, while open, its checklist.
type Dropdown struct {
	Dimension filterbar.Dimension
	Bar       filterbar.Snapshot
}

func (d Dropdown) Render(b *element.Builder) (x any) {
	color := InactiveColor
	if d.Bar.Active(d.Dimension) {
		color = ActiveColor
	}
	arrow := "▼"
	if d.Bar.IsOpen(d.Dimension) {
		arrow = "▲"
	}

	b.DivClass("dropdown").R(
		b.Button("type", "button", "class", "dropdown-trigger", "id", TriggerID(d.Dimension),
			"style", "color: "+color,
			"data-event", "dropdown",
			"data-dropdown", d.Dimension.String()).R(
			b.SpanClass("dropdown-label").T(d.Dimension.Title()),
			b.SpanClass("dropdown-arrow").T(arrow),
		),
		b.Wrap(func() {
			if d.Bar.IsOpen(d.Dimension) {
				b.Div("class", "dropdown-panel", "id", PanelID(d.Dimension)).R(
					element.RenderComponents(b, Checklist{Prefix: "option", Dimension: d.Dimension, Bar: d.Bar}),
				)
			}
		}),
	)
	return
}

// Checklist lists the fixed vocabulary of one dimension as checkboxes.
type Checklist struct {
	Prefix    string
	Dimension filterbar.Dimension
	Bar       filterbar.Snapshot
}

func (c Checklist) Render(b *element.Builder) (x any) {
	b.UlClass("checklist").R(
		element.ForEach(c.Dimension.Options(), func(opt string) {
			id := OptionID(c.Prefix, c.Dimension, opt)
			attrs := []string{"type", "checkbox", "id", id,
				"data-event", "toggle",
				"data-dimension", c.Dimension.String(),
				"data-value", opt}
			if c.Bar.Checked(c.Dimension, opt) {
				attrs = append(attrs, "checked", "checked")
			}

			b.Li().R(
				b.Label("for", id).R(
					b.Input(attrs...),
					b.SpanClass("checklist-label").T(opt),
				),
			)
		}),
	)
	return
}
