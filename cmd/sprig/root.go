package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/sprig/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprig",
	Short: "Sprig is a unidirectional state container for a todo list",
	Long: `Sprig keeps a todo list in a single store. Views dispatch actions, a pure reducer
computes the next list, and every subscriber is notified of the change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
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
	rootCmd.PersistentFlags().String("config", "", "Config file (default sprig.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// setupApp builds the store and its wiring from the persistent flags.
func setupApp(cmd *cobra.Command, out io.Writer) (*cli.App, error) {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Setup(cli.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		Out:        out,
	})
}
