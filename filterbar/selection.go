package filterbar

import "strings"

// Selection is the set of lower-cased option values chosen for one dimension.
// Order carries no meaning. Values are never mutated in place; Toggle returns a new slice
// so a parent holding the previous value keeps an intact copy.
type Selection []string

// Normalize returns the stored form of an option label.
func Normalize(value string) string {
	return strings.ToLower(value)
}

// Has reports whether value, in any case, is a member.
func (s Selection) Has(value string) bool {
	v := Normalize(value)
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Toggle removes value if present and appends it otherwise.
func (s Selection) Toggle(value string) Selection {
	v := Normalize(value)
	if s.Has(v) {
		out := make(Selection, 0, len(s)-1)
		for _, item := range s {
			if item != v {
				out = append(out, item)
			}
		}
		return out
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, v)
}

func (s Selection) Empty() bool {
	return len(s) == 0
}
