// Package commands provides the projects-overview CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/projects-overview/config"
	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "projects-overview",
	Short: "Projects overview service",
	Long: `Projects overview serves a page listing the signed-in user's projects
from a simulated API, with loading, empty and error states.

Run 'projects-overview serve' to start the web server, or
'projects-overview list' to render the list in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR), overrides LOG_LEVEL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the environment and sets up the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.App.LogLevel),
		Pretty: cfg.App.LogPretty,
	})
	return cfg, nil
}
