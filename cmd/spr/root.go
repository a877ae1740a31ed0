package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IMLS/state-program-report/internal/config"
	"github.com/IMLS/state-program-report/internal/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spr",
	Short: "Convert State Program Report exports to CSV and publish them",
	Long: `spr transforms the gzip-compressed XML export of state grant-reporting
data into flat per-state and combined CSV files matching the legacy
column layout, and can publish the result to a GitHub repository.

Usage:
  spr convert                  # Convert the configured export to CSV
  spr convert --input spr.xml.gz
  spr publish --fiscal-year 2023
  spr version`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the configuration file")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger every subcommand
// shares.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	return cfg, log, nil
}
