package filterbar

// Dropdown is the one dropdown currently open, or DropdownNone.
// A single value keeps two open dropdowns unrepresentable.
type Dropdown int

const (
	DropdownNone Dropdown = iota
	DropdownLanguage
	DropdownLevel
	DropdownContentType
	DropdownContentLanguage
)

// DropdownFor returns the dropdown that reveals the checklist of d.
func DropdownFor(d Dimension) Dropdown {
	if !d.valid() {
		return DropdownNone
	}
	return Dropdown(int(d) + 1)
}

// Dimension reports which dimension the dropdown belongs to.
func (d Dropdown) Dimension() (Dimension, bool) {
	if d <= DropdownNone || d > DropdownContentLanguage {
		return 0, false
	}
	return Dimension(int(d) - 1), true
}

func (d Dropdown) String() string {
	dim, ok := d.Dimension()
	if !ok {
		return ""
	}
	return dim.String()
}

// ParseDropdown maps a wire identifier to a dropdown. The empty string is DropdownNone.
func ParseDropdown(s string) (Dropdown, bool) {
	if s == "" {
		return DropdownNone, true
	}
	dim, ok := ParseDimension(s)
	if !ok {
		return DropdownNone, false
	}
	return DropdownFor(dim), true
}
