// Package cli implements the botbro commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris/botbro/config"
	"github.com/chris/botbro/internal/logx"
)

var (
	cfg *config.Config

	debugFlag  bool
	prettyFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "botbro",
	Short:         "Flatmate chat agent with a cleaning roster",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if debugFlag {
			c.LogDebug = true
		}
		if prettyFlag {
			c.LogPretty = true
		}
		cfg = c
		logx.Init(logx.Config{Debug: cfg.LogDebug, Pretty: cfg.LogPretty})
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log at debug level (overrides LOG_DEBUG)")
	RootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", false, "Human-readable logs (overrides LOG_PRETTY)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
