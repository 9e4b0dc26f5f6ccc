// Package tui is a terminal rendering of the course filter bar. It drives the
// same filterbar controller as the web page, with key bindings for the
// dropdowns and mouse clicks published on a click bus so that a click
// outside the bar dismisses the open dropdown.
package tui

import (
	"strings"

	"eduhub/events"
	"eduhub/filterbar"
	"eduhub/listing"
	"eduhub/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model of the browser
type Model struct {
	listing *listing.Listing
	bar     *filterbar.FilterBar
	clicks  *events.Bus
	search  textinput.Model
	styles  styles

	// cursor indexes cursorOptions()
	cursor int
	// offset is the first result shown; results anchor scrolls reset it
	offset int
	width  int
	height int
}

// New mounts a filter bar over courses
func New(courses []models.Course) (*Model, error) {
	search := textinput.New()
	search.Placeholder = "Search in courses"
	// Search terms are kept verbatim, whatever their length
	search.CharLimit = 0
	search.Prompt = ""

	m := &Model{
		listing: listing.New(courses),
		clicks:  events.NewBus(),
		search:  search,
		styles:  defaultStyles(),
		width:   80,
	}
	m.bar = filterbar.New(m.listing)
	if err := m.bar.Mount(m.clicks, filterbar.ContainerID); err != nil {
		return nil, err
	}
	return m, nil
}

// Close releases the click subscription
func (m *Model) Close() {
	m.bar.Unmount()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.clampOffset()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampCursor()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.click(msg.X, msg.Y)
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "tab":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.listing.SearchTerm() {
		m.bar.SetSearchTerm(m.search.Value())
		m.offset = 0
	}
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		if m.compact() && !m.bar.MobilePanelVisible() {
			return m, nil
		}
		m.focusSearch()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil
	case " ", "enter":
		opts := m.cursorOptions()
		if m.cursor < len(opts) {
			o := opts[m.cursor]
			m.bar.Toggle(o.dimension, o.label)
			m.offset = 0
		}
		return m, nil
	case "pgdown":
		m.offset += 5
		return m, nil
	case "pgup":
		m.offset -= 5
		if m.offset < 0 {
			m.offset = 0
		}
		return m, nil
	}

	if m.compact() {
		return m.updateCompactKeys(key)
	}

	switch key {
	case "1", "2", "3", "4":
		m.toggleDropdown(filterbar.Dimensions[key[0]-'1'])
	case "esc":
		m.bar.ToggleOpenDropdown(filterbar.DropdownNone)
	case "c":
		m.clearAll()
	}
	return m, nil
}

func (m *Model) updateCompactKeys(key string) (tea.Model, tea.Cmd) {
	if !m.bar.MobilePanelVisible() {
		if key == "f" {
			m.bar.ShowMobilePanel()
			m.cursor = 0
		}
		return m, nil
	}

	switch key {
	case "esc":
		m.bar.HideMobilePanel()
	case "a":
		m.applyMobile()
	case "x":
		m.clearMobile()
	}
	return m, nil
}

// click applies the clicked row's action, then publishes the click so the
// bar can dismiss its dropdown when the row lies outside it.
func (m *Model) click(x, y int) {
	var path []string
	lines := m.layout()
	if y >= 0 && y < len(lines) {
		l := lines[y]
		path = l.path
		if l.hit(x) {
			l.action(m)
		}
	}
	m.clicks.PublishClick(events.Click{Path: path})
	m.clampCursor()
}

func (m *Model) View() string {
	lines := m.layout()
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, l.text)
	}
	if m.height > 0 && len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

func (m *Model) compact() bool {
	return m.width > 0 && m.width < compactWidth
}

func (m *Model) toggleDropdown(d filterbar.Dimension) {
	m.bar.ToggleOpenDropdown(filterbar.DropdownFor(d))
	m.cursor = 0
}

func (m *Model) focusSearch() {
	m.search.Focus()
}

func (m *Model) clearAll() {
	m.bar.ClearAll()
	m.search.SetValue("")
	m.cursor = 0
	m.offset = 0
}

// scrollTo moves the results view to an anchor; only the results top exists
func (m *Model) scrollTo(anchor string) {
	if anchor == filterbar.ResultsAnchor {
		m.offset = 0
	}
}

func (m *Model) applyMobile() {
	m.scrollTo(m.bar.ApplyMobileFilters())
}

func (m *Model) clearMobile() {
	m.search.SetValue("")
	m.cursor = 0
	m.scrollTo(m.bar.ClearMobileFilters())
}

// clampOffset keeps the first shown result inside the current matches
func (m *Model) clampOffset() {
	if last := m.listing.NumberOfItems() - 1; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) clampCursor() {
	n := len(m.cursorOptions())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
