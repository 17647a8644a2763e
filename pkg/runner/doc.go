/*
Package runner drives a todo store from a line-oriented text stream.

It is the interactive front end used by `sprig repl` and the replay engine used by `sprig replay`.
Input lines are sanitized, parsed with the codec command grammar and dispatched to the store.
The list is printed by a store subscriber, so the view only changes when the store notifies it.

# Usage

	store := sprig.NewTodoStore()
	r := runner.NewRunner(store,
		runner.WithRenderer(tui.NewRenderer()),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
