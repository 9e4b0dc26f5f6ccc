package tui

import (
	"fmt"
	"strings"

	"eduhub/filterbar"
	"eduhub/models"

	"github.com/charmbracelet/lipgloss"
)

// Region ids used in click paths. The container id is shared with the web page.
const (
	screenID      = "screen"
	headerID      = "header"
	searchID      = "search"
	resultsID     = "results"
	mobileID      = "mobile-header"
	mobilePanelID = "mobile-filters"
	helpID        = "help"
)

// compactWidth is the terminal width under which the mobile layout is used
const compactWidth = 60

// line is one rendered row. Clicking it publishes path and, when the click
// falls in [from, to), runs action first. to == 0 covers the whole row.
type line struct {
	text     string
	path     []string
	from, to int
	action   func(m *Model)
}

func (l line) hit(x int) bool {
	if l.action == nil {
		return false
	}
	if l.to == 0 {
		return x >= l.from
	}
	return x >= l.from && x < l.to
}

func pathOf(ids ...string) []string {
	return append(ids, screenID)
}

// option is one checkbox in a checklist, addressed by the cursor
type option struct {
	dimension filterbar.Dimension
	label     string
}

// cursorOptions lists the options the cursor moves over: the open dropdown's
// on the desktop layout, every dimension's inside the mobile panel.
func (m *Model) cursorOptions() []option {
	var opts []option
	snap := m.bar.Snapshot()
	for _, d := range filterbar.Dimensions {
		if m.compact() {
			if !snap.MobileOpen {
				continue
			}
		} else if !snap.IsOpen(d) {
			continue
		}
		for _, o := range d.Options() {
			opts = append(opts, option{dimension: d, label: o})
		}
	}
	return opts
}

func (m *Model) layout() []line {
	snap := m.bar.Snapshot()
	if m.compact() {
		return m.compactLayout(snap)
	}
	return m.desktopLayout(snap)
}

func (m *Model) desktopLayout(snap filterbar.Snapshot) []line {
	var lines []line

	head := m.styles.title.Render("Courses and Content") + "  " +
		m.styles.count.Render(fmt.Sprintf("%d items", snap.NumberOfItems))
	headLine := line{path: pathOf(headerID)}
	if snap.ClearVisible() {
		head += "  "
		headLine.from = lipgloss.Width(head)
		head += m.styles.clear.Render("[c] Delete all filters")
		headLine.to = lipgloss.Width(head)
		headLine.action = func(m *Model) { m.clearAll() }
	}
	headLine.text = head
	lines = append(lines, headLine, line{path: pathOf()})

	cursor := 0
	for i, d := range filterbar.Dimensions {
		arrow := "▼"
		if snap.IsOpen(d) {
			arrow = "▲"
		}
		style := m.styles.inactive
		if snap.Active(d) {
			style = m.styles.active
		}
		lines = append(lines, line{
			text:   style.Render(fmt.Sprintf("%d %s %s", i+1, d.Title(), arrow)),
			path:   pathOf("trigger-"+d.String(), filterbar.ContainerID),
			action: func(m *Model) { m.toggleDropdown(d) },
		})

		if !snap.IsOpen(d) {
			continue
		}
		for _, o := range d.Options() {
			lines = append(lines, m.optionLine(snap, d, o, cursor == m.cursor,
				pathOf("option-"+d.String(), "options-"+d.String(), filterbar.ContainerID)))
			cursor++
		}
	}

	lines = append(lines, line{
		text:   "/ " + m.search.View(),
		path:   pathOf(searchID, filterbar.ContainerID),
		action: func(m *Model) { m.focusSearch() },
	})
	lines = append(lines, line{path: pathOf()})

	lines = append(lines, m.resultLines()...)
	lines = append(lines, line{path: pathOf()}, line{
		text: m.styles.help.Render("1-4 dropdown · ↑/↓ move · space toggle · / search · c clear · q quit"),
		path: pathOf(helpID),
	})
	return lines
}

func (m *Model) compactLayout(snap filterbar.Snapshot) []line {
	var lines []line

	lines = append(lines, line{
		text: m.styles.title.Render("Courses and Content") + "  " +
			m.styles.count.Render(fmt.Sprintf("%d items", snap.NumberOfItems)),
		path: pathOf(mobileID),
	})

	if !snap.MobileOpen {
		lines = append(lines, line{
			text:   m.styles.active.Render("[f] Courses"),
			path:   pathOf("mobile-open", mobileID),
			action: func(m *Model) { m.bar.ShowMobilePanel() },
		}, line{path: pathOf()})
		lines = append(lines, m.resultLines()...)
		lines = append(lines, line{path: pathOf()}, line{
			text: m.styles.help.Render("f filters · q quit"),
			path: pathOf(helpID),
		})
		return lines
	}

	lines = append(lines, line{
		text:   m.styles.panel.Render("Filters") + "  " + m.styles.help.Render("[esc] close"),
		path:   pathOf("mobile-close", mobilePanelID),
		action: func(m *Model) { m.bar.HideMobilePanel() },
	})
	lines = append(lines, line{
		text:   "/ " + m.search.View(),
		path:   pathOf("mobile-search", mobilePanelID),
		action: func(m *Model) { m.focusSearch() },
	})

	cursor := 0
	for _, d := range filterbar.Dimensions {
		lines = append(lines, line{text: m.styles.title.Render(d.Title()), path: pathOf(mobilePanelID)})
		for _, o := range d.Options() {
			lines = append(lines, m.optionLine(snap, d, o, cursor == m.cursor, pathOf("mobile-"+d.String(), mobilePanelID)))
			cursor++
		}
	}

	lines = append(lines, line{path: pathOf(mobilePanelID)}, line{
		text:   m.styles.active.Render("[a] Apply Filters"),
		path:   pathOf("mobile-apply", mobilePanelID),
		action: func(m *Model) { m.applyMobile() },
	}, line{
		text:   m.styles.clear.Render("[x] Clear Filters"),
		path:   pathOf("mobile-clear", mobilePanelID),
		action: func(m *Model) { m.clearMobile() },
	}, line{
		text: m.styles.help.Render("↑/↓ move · space toggle · a apply · x clear · esc close"),
		path: pathOf(helpID, mobilePanelID),
	})
	return lines
}

func (m *Model) optionLine(snap filterbar.Snapshot, d filterbar.Dimension, o string, focused bool, path []string) line {
	box := "[ ]"
	if snap.Checked(d, o) {
		box = "[x]"
	}
	prefix := "    "
	text := fmt.Sprintf("%s%s %s", prefix, box, o)
	if focused {
		text = m.styles.cursor.Render("  > " + box + " " + o)
	}
	return line{
		text:   text,
		path:   path,
		action: func(m *Model) { m.bar.Toggle(d, o) },
	}
}

// resultLines lists the matches starting at the scroll offset. It never moves the offset.
func (m *Model) resultLines() []line {
	matches := m.listing.Matches()
	if len(matches) == 0 {
		return []line{{text: m.styles.meta.Render("No courses match these filters."), path: pathOf(resultsID)}}
	}

	start := m.offset
	if start >= len(matches) {
		start = len(matches) - 1
	}
	var lines []line
	for _, c := range matches[start:] {
		lines = append(lines, line{text: m.courseText(c), path: pathOf(resultsID)})
	}
	return lines
}

func (m *Model) courseText(c models.Course) string {
	meta := strings.Join([]string{
		c.Level,
		string(c.ContentType),
		c.ContentLanguage,
		strings.Join(c.ProgrammingLanguages(), ", "),
	}, " · ")
	return "• " + m.styles.course.Render(c.Title) + "  " + m.styles.meta.Render(meta)
}
