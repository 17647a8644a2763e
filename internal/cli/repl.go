package cli

import (
	"context"
	"io"

	"github.com/aretw0/sprig/internal/presentation/tui"
	"github.com/aretw0/sprig/pkg/runner"
)

// RunREPL starts the interactive session on in.
// The banner and the glamour renderer are only used on a terminal.
func RunREPL(ctx context.Context, app *App, in io.Reader) error {
	renderer := tui.NewPlainRenderer()
	if app.Colored {
		tui.PrintBanner(app.Out)
		renderer = tui.NewRenderer()
	}

	r := runner.NewRunner(app.Store,
		runner.WithInput(in),
		runner.WithOutput(app.Out),
		runner.WithLogger(app.Logger),
		runner.WithRenderer(renderer),
		runner.WithFormatter(app.Format),
	)

	printSystemMessage(app.Out, "type help for commands")
	if app.Store.GetState().Len() > 0 {
		io.WriteString(app.Out, app.Format(app.Store.GetState()))
	}
	return r.Run(ctx)
}
