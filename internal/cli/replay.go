package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/sprig/pkg/codec"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/runner"
)

// RunReplay loads a script and dispatches its actions, printing the list after each one.
func RunReplay(ctx context.Context, app *App, path string) error {
	name, actions, err := codec.LoadScript(path)
	if err != nil {
		return err
	}
	if name == "" {
		name = path
	}

	r := runner.NewRunner(app.Store,
		runner.WithOutput(app.Out),
		runner.WithLogger(app.Logger),
	)

	sub := app.Store.Subscribe(func(s domain.State) {
		fmt.Fprint(app.Out, app.Format(s))
	})
	defer sub.Dispose()

	printSystemMessage(app.Out, "replaying %q (%d actions)", name, len(actions))
	applied, err := r.Replay(ctx, actions)
	if err != nil {
		return fmt.Errorf("replay stopped after %d of %d actions: %w", applied, len(actions), err)
	}
	printSystemMessage(app.Out, "replayed %d actions, %d todos", applied, app.Store.GetState().Len())
	return nil
}
