package main

import (
	"context"
	"os"

	"github.com/aretw0/sprig/internal/cli"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Edit the todo list interactively",
	Long: `Reads commands from Stdin (add, rm, mv, clear, ls, help, quit) and prints the
list every time the store notifies a change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd, os.Stdout)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunREPL(ctx, app, os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
