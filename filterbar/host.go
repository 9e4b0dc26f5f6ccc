package filterbar

// Host is the parent that owns the filter state and the item list.
// Every mutation the bar performs goes through one of its setters, so the
// parent can observe and override anything except which dropdown is open
// and whether the mobile panel is showing.
type Host interface {
	NumberOfItems() int
	Selection(d Dimension) Selection
	SetSelection(d Dimension, s Selection)
	SortChoice() SortChoice
	SetSortChoice(c SortChoice)
	SearchTerm() string
	SetSearchTerm(text string)
}

// State is a plain holder for the parent-owned part of the filter state.
// Parents embed it and add NumberOfItems to satisfy Host.
// The zero value is ready to use and sorts by relevance.
type State struct {
	selections [4]Selection
	sortBy     SortChoice
	searchTerm string
}

func (s *State) Selection(d Dimension) Selection {
	if !d.valid() {
		return nil
	}
	return s.selections[d]
}

func (s *State) SetSelection(d Dimension, sel Selection) {
	if !d.valid() {
		return
	}
	s.selections[d] = sel
}

func (s *State) SortChoice() SortChoice {
	if s.sortBy == "" {
		return SortRelevance
	}
	return s.sortBy
}

func (s *State) SetSortChoice(c SortChoice) {
	s.sortBy = c
}

func (s *State) SearchTerm() string {
	return s.searchTerm
}

func (s *State) SetSearchTerm(text string) {
	s.searchTerm = text
}
