package main

import (
	"context"
	"os"

	"github.com/aretw0/sprig/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Dispatch the actions recorded in a YAML or JSON script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd, os.Stdout)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunReplay(ctx, app, args[0])
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
