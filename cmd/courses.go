package cmd

import (
	"fmt"
	"io"
	"strings"

	"eduhub/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Print the catalog as a table",
	RunE:  runCourses,
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := openCatalog(cfg); err != nil {
		return err
	}
	defer models.CloseDB()

	courses, err := models.ListCourses()
	if err != nil {
		return err
	}
	return printCourses(cmd.OutOrStdout(), courses)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B00B9")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func printCourses(out io.Writer, courses []models.Course) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("SLUG", "TITLE", "LANGUAGES", "LEVEL", "TYPE", "CONTENT LANGUAGE")

	for _, c := range courses {
		t.Row(c.Slug, c.Title, strings.Join(c.ProgrammingLanguages(), ","),
			c.Level, string(c.ContentType), c.ContentLanguage)
	}

	if _, err := fmt.Fprintln(out, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d courses\n", len(courses))
	return err
}
