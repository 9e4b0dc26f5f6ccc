package filterbar

// Snapshot is a read-only copy of the bar's state at one instant.
type Snapshot struct {
	NumberOfItems int
	SortBy        SortChoice
	SearchTerm    string
	Open          Dropdown
	MobileOpen    bool

	selections [4]Selection
}

// Selected returns the set chosen for d.
func (s Snapshot) Selected(d Dimension) Selection {
	if !d.valid() {
		return nil
	}
	return s.selections[d]
}

// Active reports whether d has a non-empty selection; active triggers take the accent colour.
func (s Snapshot) Active(d Dimension) bool {
	return !s.Selected(d).Empty()
}

// Checked reports whether the option label is ticked in the checklist for d.
func (s Snapshot) Checked(d Dimension, option string) bool {
	return s.Selected(d).Has(option)
}

// IsOpen reports whether the dropdown for d is the open one.
func (s Snapshot) IsOpen(d Dimension) bool {
	return s.Open == DropdownFor(d)
}

// ClearVisible decides whether the header shows the "delete all filters" action.
func (s Snapshot) ClearVisible() bool {
	for _, d := range Dimensions {
		if s.Active(d) {
			return true
		}
	}
	return s.SearchTerm != ""
}
