package tui

import (
	"strings"
	"testing"

	"eduhub/filterbar"
	"eduhub/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourses() []models.Course {
	return []models.Course{
		{Slug: "m", Title: "Motoko Basics", Languages: []string{"motoko"}, Level: "beginner", ContentLanguage: "english", ContentType: models.ContentText},
		{Slug: "r", Title: "Rust Canisters", Languages: []string{"rust"}, Level: "expert", ContentLanguage: "english", ContentType: models.ContentVideo},
		{Slug: "n", Title: "ICP Overview", Level: "beginner", ContentLanguage: "spanish", ContentType: models.ContentVideo},
	}
}

func newModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(testCourses())
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// rowOf returns the first layout row whose text contains s
func rowOf(t *testing.T, m *Model, s string) int {
	t.Helper()
	for i, l := range m.layout() {
		if strings.Contains(l.text, s) {
			return i
		}
	}
	t.Fatalf("no row contains %q", s)
	return -1
}

func TestNumberKeysOpenOneDropdown(t *testing.T) {
	m := newModel(t)

	send(m, key("1"))
	assert.Equal(t, filterbar.DropdownLanguage, m.bar.OpenDropdown())

	send(m, key("2"))
	assert.Equal(t, filterbar.DropdownLevel, m.bar.OpenDropdown())

	send(m, key("2"))
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown())

	send(m, key("4"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown())
}

func TestSpaceTogglesOptionUnderCursor(t *testing.T) {
	m := newModel(t)

	send(m, key("1"), tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, filterbar.Selection{"motoko"}, m.listing.Selection(filterbar.Language))
	assert.Equal(t, 1, m.listing.NumberOfItems())

	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, filterbar.Selection{"motoko", "rust"}, m.listing.Selection(filterbar.Language))
	assert.Equal(t, 2, m.listing.NumberOfItems())

	view := m.View()
	assert.Contains(t, view, "[x] Motoko")
	assert.Contains(t, view, "Delete all filters")
}

func TestClickOutsideClosesDropdown(t *testing.T) {
	m := newModel(t)
	send(m, key("1"))

	send(m, leftClick(0, rowOf(t, m, "Rust Canisters")))
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown())

	send(m, key("1"))
	send(m, leftClick(0, 500))
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown(), "a click below the content is outside too")
}

func TestClickInsideKeepsDropdownOpen(t *testing.T) {
	m := newModel(t)
	send(m, key("1"))

	send(m, leftClick(6, rowOf(t, m, "[ ] None")))
	assert.Equal(t, filterbar.DropdownLanguage, m.bar.OpenDropdown())
	assert.Equal(t, filterbar.Selection{"none"}, m.listing.Selection(filterbar.Language))
	assert.Equal(t, 1, m.listing.NumberOfItems())
}

func TestClickOnTriggerTogglesWithoutRace(t *testing.T) {
	m := newModel(t)

	trigger := rowOf(t, m, "Content Type")
	send(m, leftClick(0, trigger))
	assert.Equal(t, filterbar.DropdownContentType, m.bar.OpenDropdown())

	send(m, leftClick(0, rowOf(t, m, "Content Type")))
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown())
}

func TestClearFromHeader(t *testing.T) {
	m := newModel(t)
	send(m, key("2"), tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.bar.HasActiveFilters())

	head := m.layout()[0]
	require.NotNil(t, head.action, "header offers the clear action")
	send(m, leftClick(head.from, 0))

	assert.False(t, m.bar.HasActiveFilters())
	assert.Equal(t, filterbar.DropdownNone, m.bar.OpenDropdown())
	assert.NotContains(t, m.View(), "Delete all filters")
}

func TestSearchIsStoredVerbatim(t *testing.T) {
	m := newModel(t)

	send(m, key("/"), key("R"), key("u"), key("s"), key("t"), key(" "))
	assert.Equal(t, "Rust ", m.listing.SearchTerm())
	assert.Equal(t, 1, m.listing.NumberOfItems())

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.search.Focused())

	send(m, key("c"))
	assert.Equal(t, "", m.listing.SearchTerm())
	assert.Equal(t, "", m.search.Value())
	assert.Equal(t, 3, m.listing.NumberOfItems())
}

func TestLongSearchIsNotTruncated(t *testing.T) {
	m := newModel(t)
	term := strings.Repeat("ab", 150)

	send(m, key("/"))
	for _, r := range term {
		send(m, key(string(r)))
	}
	assert.Equal(t, term, m.listing.SearchTerm())
	assert.Equal(t, term, m.search.Value())
}

func TestScrollStaysInsideMatches(t *testing.T) {
	m := newModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, m.offset, "offset stops at the last match")

	before := m.offset
	_ = m.View()
	assert.Equal(t, before, m.offset, "rendering leaves the offset alone")

	send(m, key("1"), tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 0, m.offset)

	send(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.offset)
}

func TestCompactLayoutMobilePanel(t *testing.T) {
	m := newModel(t)
	send(m, tea.WindowSizeMsg{Width: 40, Height: 60})

	assert.Contains(t, m.View(), "[f] Courses")
	send(m, key("f"))
	require.True(t, m.bar.MobilePanelVisible())

	view := m.View()
	for _, d := range filterbar.Dimensions {
		assert.Contains(t, view, d.Title())
	}
	assert.Contains(t, view, "Apply Filters")
	assert.Contains(t, view, "Clear Filters")

	// The cursor walks every checklist inline
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, filterbar.Selection{"motoko"}, m.listing.Selection(filterbar.Language))

	m.offset = 2
	send(m, key("a"))
	assert.False(t, m.bar.MobilePanelVisible())
	assert.Equal(t, 0, m.offset, "apply scrolls to the results anchor")
	assert.Equal(t, 1, m.listing.NumberOfItems(), "apply keeps the selection")

	send(m, key("f"), key("x"))
	assert.False(t, m.bar.MobilePanelVisible())
	assert.False(t, m.bar.HasActiveFilters())

	send(m, key("f"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.bar.MobilePanelVisible())
}

func TestCloseReleasesClicks(t *testing.T) {
	m, err := New(testCourses())
	require.NoError(t, err)
	require.Equal(t, 1, m.clicks.Listeners())

	m.Close()
	assert.Equal(t, 0, m.clicks.Listeners())
	m.Close()
}
