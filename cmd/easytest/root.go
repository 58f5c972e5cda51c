package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/spf13/cobra"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "easytest",
	Short: "easytest checks documents against structural specs",
	Long: `easytest validates that YAML or JSON documents have the properties a spec
lists, each with the expected type tag (function, string, number, boolean,
object, undefined, symbol, bigint).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", raw, err)
		}
		logger = logging.New(level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Minimum log level (debug, info, warn, error)")
}
