package main

import (
	"context"
	"os"

	"github.com/aretw0/sprig/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the store over HTTP: GET /state, POST /actions, GET /events (SSE)
and, when enabled, GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd, os.Stdout)
		if err != nil {
			return err
		}

		addr := app.Config.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Serve(ctx, app, addr, nil)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on (overrides config)")
}
