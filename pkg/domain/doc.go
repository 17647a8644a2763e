/*
Package domain contains the core domain models and business logic for sprig.

It defines the todo-list actions, the State they transform and the pure Reduce function
that maps one to the other. This package is kept pure and free of external dependencies
like I/O or logging, following Hexagonal Architecture principles.

# Key Entities

  - Action: A closed set of variants (AddTodo, RemoveTodo, MoveTodo, ClearAll, Init).
  - State: The ordered todo list plus a Change hint for views.
  - Reduce: The pure transition function (State, Action) -> State.
  - LifecycleHooks: Callbacks the store fires after dispatches and registry changes.
*/
package domain
