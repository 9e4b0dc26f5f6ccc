package cmd

import (
	"fmt"

	"eduhub/models"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Load courses from a YAML file into the catalog",
	Long: `Import reads a YAML catalog and stores every course. A course whose slug
already exists is updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	courses, err := models.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	if err := models.InitDB(cfg.Catalog.DBPath); err != nil {
		return err
	}
	defer models.CloseDB()

	n, err := models.ImportCourses(courses)
	if err != nil {
		logger.LogErr(err, "import stopped", "stored", fmt.Sprint(n))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d courses from %s\n", n, args[0])
	return nil
}
