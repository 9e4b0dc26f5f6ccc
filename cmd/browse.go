package cmd

import (
	"eduhub/models"
	"eduhub/tui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long: `Browse opens the course listing in the terminal. Number keys open the
filter dropdowns, space toggles an option, / searches and c clears every
filter. Narrow terminals get the compact layout with a filter panel.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
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
	return tui.Run(courses)
}
