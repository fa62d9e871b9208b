// Package cmd is spanctl's cobra command tree, adapted from the
// teacher's cli/cmd package: one exported rootCmd, one file per
// subcommand, each wiring itself in via init()'s AddCommand.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "spanctl",
		Short:        "spanctl",
		SilenceUsage: true,
		Long:         `CLI driver for the layered span-attribute engine: plan, run, and inspect resolver pipelines over tokenized text.`,
	}

	configPath string
	logLevel   string
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a spanctl.yaml pipeline config (disable/enable lists)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")
	cobra.OnInitialize(initLogging)
	return rootCmd.Execute()
}

func initLogging() {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
