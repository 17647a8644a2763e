package main

import (
	"os"

	"github.com/aretw0/sprig/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the reference scenario and print every notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd, os.Stdout)
		if err != nil {
			return err
		}
		_, err = cli.RunDemo(app)
		return err
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
