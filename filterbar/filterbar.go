// Package filterbar holds the selection logic of the course filter bar:
// four option sets, a search term and a sort choice owned by a parent Host,
// plus the bar's own dropdown and mobile-panel flags.
//
// Presentations (HTML, terminal) read a Snapshot and call the mutators; they
// never touch the state directly.
package filterbar

import (
	"errors"

	"eduhub/events"
)

const (
	// ResultsAnchor is the in-page anchor at the top of the results.
	ResultsAnchor = "start"

	// ContainerID wraps the dropdown triggers and panels. Clicks inside it never dismiss.
	ContainerID = "select-boxes"
)

// ErrAlreadyMounted is returned by Mount when the bar already holds a click subscription.
var ErrAlreadyMounted = errors.New("filter bar is already mounted")

// FilterBar mediates between a presentation and its Host.
type FilterBar struct {
	host       Host
	open       Dropdown
	mobileOpen bool

	// container is the id of the element whose subtree counts as "inside" the bar.
	// Empty until Mount.
	container   string
	unsubscribe func()
}

// New creates a filter bar reporting to host
func New(host Host) *FilterBar {
	return &FilterBar{host: host}
}

// Mount subscribes the bar to clicks so that a click outside containerID
// closes the open dropdown. It must be paired with exactly one Unmount.
func (f *FilterBar) Mount(clicks events.ClickSource, containerID string) error {
	if f.unsubscribe != nil {
		return ErrAlreadyMounted
	}
	f.container = containerID
	f.unsubscribe = clicks.SubscribeClicks(f.handleClick)
	return nil
}

// Unmount releases the click subscription and resets the local flags.
// Calling it on an unmounted bar does nothing.
func (f *FilterBar) Unmount() {
	if f.unsubscribe == nil {
		return
	}
	f.unsubscribe()
	f.unsubscribe = nil
	f.container = ""
	f.open = DropdownNone
	f.mobileOpen = false
}

func (f *FilterBar) Mounted() bool {
	return f.unsubscribe != nil
}

// handleClick closes the open dropdown for clicks landing outside the bar.
// Clicks inside, the dropdown triggers included, are left to their own handlers.
func (f *FilterBar) handleClick(c events.Click) {
	if f.container == "" {
		return
	}
	if c.Within(f.container) {
		return
	}
	f.open = DropdownNone
}

// Toggle flips the membership of value in the set for d and reports the new set to the host.
func (f *FilterBar) Toggle(d Dimension, value string) {
	if !d.valid() {
		return
	}
	f.host.SetSelection(d, f.host.Selection(d).Toggle(value))
}

// SetSortChoice replaces the sort choice and closes any open dropdown.
func (f *FilterBar) SetSortChoice(c SortChoice) {
	f.host.SetSortChoice(c)
	f.open = DropdownNone
}

// SetSearchTerm stores text exactly as typed.
func (f *FilterBar) SetSearchTerm(text string) {
	f.host.SetSearchTerm(text)
}

// ToggleOpenDropdown closes d if it is open, otherwise opens it in place of any other.
func (f *FilterBar) ToggleOpenDropdown(d Dropdown) {
	if d == f.open {
		f.open = DropdownNone
		return
	}
	f.open = d
}

// ClearAll empties every set, resets sort and search and closes the dropdown.
func (f *FilterBar) ClearAll() {
	for _, d := range Dimensions {
		f.host.SetSelection(d, Selection{})
	}
	f.host.SetSortChoice(SortRelevance)
	f.host.SetSearchTerm("")
	f.open = DropdownNone
}

func (f *FilterBar) OpenDropdown() Dropdown {
	return f.open
}

// ShowMobilePanel slides the mobile overlay in.
func (f *FilterBar) ShowMobilePanel() {
	f.mobileOpen = true
}

// HideMobilePanel closes the overlay through its close control.
func (f *FilterBar) HideMobilePanel() {
	f.mobileOpen = false
}

func (f *FilterBar) MobilePanelVisible() bool {
	return f.mobileOpen
}

// ApplyMobileFilters closes the overlay and returns the anchor to scroll to.
func (f *FilterBar) ApplyMobileFilters() string {
	f.mobileOpen = false
	return ResultsAnchor
}

// ClearMobileFilters clears everything, closes the overlay and returns the anchor to scroll to.
func (f *FilterBar) ClearMobileFilters() string {
	f.ClearAll()
	f.mobileOpen = false
	return ResultsAnchor
}

// HasActiveFilters reports whether any set is non-empty or a search term is present.
// It decides the visibility of the "delete all filters" action.
func (f *FilterBar) HasActiveFilters() bool {
	for _, d := range Dimensions {
		if !f.host.Selection(d).Empty() {
			return true
		}
	}
	return f.host.SearchTerm() != ""
}

// Snapshot captures everything a presentation needs to draw the bar.
func (f *FilterBar) Snapshot() Snapshot {
	s := Snapshot{
		NumberOfItems: f.host.NumberOfItems(),
		SortBy:        f.host.SortChoice(),
		SearchTerm:    f.host.SearchTerm(),
		Open:          f.open,
		MobileOpen:    f.mobileOpen,
	}
	for _, d := range Dimensions {
		s.selections[d] = append(Selection(nil), f.host.Selection(d)...)
	}
	return s
}
