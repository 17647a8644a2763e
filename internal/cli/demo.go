package cli

import (
	"fmt"

	"github.com/aretw0/sprig/pkg/codec"
	"github.com/aretw0/sprig/pkg/domain"
)

// DemoActions is the scenario played by `sprig demo`.
var DemoActions = []domain.Action{
	domain.AddTodo{Text: "Learn Redux for iOS"},
	domain.AddTodo{Text: "Buy shampoo at Tops"},
	domain.AddTodo{Text: "Watch series on Netflix"},
	domain.AddTodo{Text: "Call daddy"},
	domain.RemoveTodo{Index: 2},
	domain.RemoveTodo{Index: 0},
	domain.ClearAll{},
}

// RunDemo plays DemoActions against the app store and prints every notification.
// It returns the number of notifications received.
func RunDemo(app *App) (int, error) {
	notifications := 0
	sub := app.Store.Subscribe(func(state domain.State) {
		notifications++
		fmt.Fprintf(app.Out, "-- notification %d (%s)\n", notifications, state.Change.Kind)
		fmt.Fprint(app.Out, app.Format(state))
	})
	defer sub.Dispose()

	for _, action := range DemoActions {
		printSystemMessage(app.Out, "%s", codec.FormatCommand(action))
		if _, err := app.Store.Dispatch(action); err != nil {
			return notifications, fmt.Errorf("demo step %q failed: %w", codec.FormatCommand(action), err)
		}
	}

	printSystemMessage(app.Out, "%d actions, %d notifications", len(DemoActions), notifications)
	return notifications, nil
}
