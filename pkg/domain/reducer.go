package domain

// Reduce computes the next State for an action.
// This is a pure function: state is never mutated, and on error it is returned as is.
func Reduce(state State, action Action) (State, error) {
	todos := state.Todos
	if todos == nil {
		todos = []string{}
	}

	switch a := action.(type) {
	case AddTodo:
		next := make([]string, len(todos), len(todos)+1)
		copy(next, todos)
		next = append(next, a.Text)
		return State{
			Todos:  next,
			Change: Change{Kind: ChangeInsert, From: NoIndex, To: len(next) - 1},
		}, nil

	case RemoveTodo:
		if !inRange(a.Index, len(todos)) {
			return state, &IndexError{Kind: KindRemoveTodo, Index: a.Index, Len: len(todos)}
		}
		next := make([]string, 0, len(todos)-1)
		next = append(next, todos[:a.Index]...)
		next = append(next, todos[a.Index+1:]...)
		return State{
			Todos:  next,
			Change: Change{Kind: ChangeDelete, From: a.Index, To: NoIndex},
		}, nil

	case MoveTodo:
		if !inRange(a.From, len(todos)) {
			return state, &IndexError{Kind: KindMoveTodo, Index: a.From, Len: len(todos)}
		}
		if !inRange(a.To, len(todos)) {
			return state, &IndexError{Kind: KindMoveTodo, Index: a.To, Len: len(todos)}
		}
		item := todos[a.From]

		// Remove, then insert against the shortened list.
		rest := make([]string, 0, len(todos))
		rest = append(rest, todos[:a.From]...)
		rest = append(rest, todos[a.From+1:]...)

		next := make([]string, 0, len(todos))
		next = append(next, rest[:a.To]...)
		next = append(next, item)
		next = append(next, rest[a.To:]...)
		return State{
			Todos:  next,
			Change: Change{Kind: ChangeMove, From: a.From, To: a.To},
		}, nil

	case ClearAll:
		return State{
			Todos:  []string{},
			Change: Reload(),
		}, nil

	default:
		// Init, nil and anything else pass through.
		next := State{Todos: todos, Change: NoChange()}
		return next.Clone(), nil
	}
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
