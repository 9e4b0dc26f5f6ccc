package courses

import (
	"strings"

	"eduhub/filterbar"
)

// Element ids shared by the markup, the event shim and the fragment swaps.
const (
	PageID         = "courses-page"
	BarID          = "filter-bar"
	ContainerID    = filterbar.ContainerID
	CountID        = "items-count"
	ClearID        = "clear-filters"
	SearchID       = "course-search"
	MobileHeaderID = "mobile-header"
	MobilePanelID  = "mobile-filters"
	MobileSearchID = "mobile-search"
	AnchorID       = filterbar.ResultsAnchor
	ResultsID      = "course-list"
)

// Accent colours of the dropdown triggers.
const (
	ActiveColor   = "#3B00B9"
	InactiveColor = "black"
)

// TriggerID is the id of the dropdown trigger for d
func TriggerID(d filterbar.Dimension) string {
	return "dropdown-" + d.String()
}

// PanelID is the id of the checklist revealed by the trigger for d
func PanelID(d filterbar.Dimension) string {
	return "options-" + d.String()
}

// OptionID is the checkbox id of option in the checklist for d. Mobile
// checklists carry their own prefix so ids stay unique on the page.
func OptionID(prefix string, d filterbar.Dimension, option string) string {
	return prefix + "-" + d.String() + "-" + strings.ToLower(strings.ReplaceAll(option, " ", "-"))
}
