package visit

import (
	"errors"
	"fmt"

	"eduhub/filterbar"
)

// EventType names a user interaction forwarded by a presentation.
type EventType string

const (
	EventToggle      EventType = "toggle"
	EventSort        EventType = "sort"
	EventSearch      EventType = "search"
	EventDropdown    EventType = "dropdown"
	EventClear       EventType = "clear"
	EventClick       EventType = "click"
	EventMobileOpen  EventType = "mobile_open"
	EventMobileClose EventType = "mobile_close"
	EventMobileApply EventType = "mobile_apply"
	EventMobileClear EventType = "mobile_clear"
)

// ErrBadEvent is returned for events that cannot be applied.
var ErrBadEvent = errors.New("bad event")

// Event is one interaction. Only the fields its Type needs are read.
// Path lists element ids from the click target outward; when present the
// click is published after the action is applied, the way a browser
// bubbles a click to the document after the element's own handler.
type Event struct {
	Type      EventType `json:"type" msgpack:"type"`
	Dimension string    `json:"dimension,omitempty" msgpack:"dimension,omitempty"`
	Value     string    `json:"value,omitempty" msgpack:"value,omitempty"`
	Dropdown  string    `json:"dropdown,omitempty" msgpack:"dropdown,omitempty"`
	Text      string    `json:"text,omitempty" msgpack:"text,omitempty"`
	Path      []string  `json:"path,omitempty" msgpack:"path,omitempty"`
}

// Toggle builds a checkbox event for option of d
func Toggle(d filterbar.Dimension, option string) Event {
	return Event{Type: EventToggle, Dimension: d.String(), Value: option}
}

// OpenClose builds a dropdown trigger event for d
func OpenClose(d filterbar.Dimension) Event {
	return Event{Type: EventDropdown, Dropdown: filterbar.DropdownFor(d).String()}
}

// apply runs the action of e against bar and returns the anchor to scroll to, if any.
func (e Event) apply(bar *filterbar.FilterBar) (string, error) {
	switch e.Type {
	case EventToggle:
		d, ok := filterbar.ParseDimension(e.Dimension)
		if !ok {
			return "", fmt.Errorf("%w: unknown dimension %q", ErrBadEvent, e.Dimension)
		}
		bar.Toggle(d, e.Value)
	case EventSort:
		c, ok := filterbar.ParseSortChoice(e.Value)
		if !ok {
			return "", fmt.Errorf("%w: unknown sort choice %q", ErrBadEvent, e.Value)
		}
		bar.SetSortChoice(c)
	case EventSearch:
		bar.SetSearchTerm(e.Text)
	case EventDropdown:
		dd, ok := filterbar.ParseDropdown(e.Dropdown)
		if !ok {
			return "", fmt.Errorf("%w: unknown dropdown %q", ErrBadEvent, e.Dropdown)
		}
		bar.ToggleOpenDropdown(dd)
	case EventClear:
		bar.ClearAll()
	case EventClick:
		// publishing is all a bare click does
	case EventMobileOpen:
		bar.ShowMobilePanel()
	case EventMobileClose:
		bar.HideMobilePanel()
	case EventMobileApply:
		return bar.ApplyMobileFilters(), nil
	case EventMobileClear:
		return bar.ClearMobileFilters(), nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrBadEvent, e.Type)
	}
	return "", nil
}
