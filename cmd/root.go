// Package cmd is the eduhub command tree.
package cmd

import (
	"strings"

	"eduhub/config"
	"eduhub/models"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "eduhub",
	Short: "Course catalog with a filterable listing",
	Long: `EduHub serves a course catalog behind a filter bar. Courses can be
narrowed by programming language, level, content type and content language,
and searched by title, description or tag, in the browser or the terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./eduhub.yaml or $HOME/.config/eduhub/eduhub.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("eduhub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/eduhub")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// EDUHUB_VIEWS_TOKEN_SECRET for views.token_secret
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is fine, defaults and env still apply
	_ = viper.ReadInConfig()
}

// loadConfig reads the settings and applies the log level
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.SetLogLevel(cfg.Logging.Level)
	return cfg, nil
}

// openCatalog opens the course store, seeding it when configured.
// Callers close it with models.CloseDB.
func openCatalog(cfg *config.Config) error {
	if err := models.InitDB(cfg.Catalog.DBPath); err != nil {
		return err
	}
	if !cfg.Catalog.Seed {
		return nil
	}
	n, err := models.SeedIfEmpty()
	if err != nil {
		models.CloseDB()
		return err
	}
	if n > 0 {
		logger.Info("Seeded course catalog", "courses", n)
	}
	return nil
}
