package tui

import (
	"eduhub/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/serr"
)

// Run shows the browser until the user quits
func Run(courses []models.Course) error {
	m, err := New(courses)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return serr.Wrap(err, "terminal browser failed")
	}
	return nil
}
