package sprig

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/sprig/internal/runtime"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// Store is the generic state container. See NewStore.
type Store[S, A any] = runtime.Store[S, A]

// Reducer computes the next state for an action. It must be pure.
type Reducer[S, A any] = runtime.Reducer[S, A]

// TodoStore is the Store for the todo-list domain.
type TodoStore = runtime.Store[domain.State, domain.Action]

// Option defines a functional option for configuring a Store.
type Option = runtime.Option

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return runtime.WithLogger(logger)
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return runtime.WithLifecycleHooks(hooks)
}

// WithName labels the store in logs and lifecycle events.
func WithName(name string) Option {
	return runtime.WithName(name)
}

// NewStore creates a store from a reducer.
// The initial state is computed by sending the zero action through the reducer with the zero state.
func NewStore[S, A any](reducer Reducer[S, A], opts ...Option) (*Store[S, A], error) {
	return runtime.NewStore(reducer, opts...)
}

// NewStoreWithState creates a store seeded with an explicit initial state.
func NewStoreWithState[S, A any](reducer Reducer[S, A], initial S, opts ...Option) *Store[S, A] {
	return runtime.NewStoreWithState(reducer, initial, opts...)
}

// NewTodoStore creates an empty todo store driven by domain.Reduce.
func NewTodoStore(opts ...Option) *TodoStore {
	// domain.Reduce never fails on the init action.
	store, _ := runtime.NewStore[domain.State, domain.Action](domain.Reduce, opts...)
	return store
}

// NewTodoStoreWithTodos creates a todo store seeded with todos.
func NewTodoStoreWithTodos(todos []string, opts ...Option) *TodoStore {
	return runtime.NewStoreWithState[domain.State, domain.Action](domain.Reduce, domain.NewState(todos...), opts...)
}

var (
	_ ports.TodoStore                                    = (*TodoStore)(nil)
	_ ports.StateDispatcher[domain.State, domain.Action] = (*TodoStore)(nil)
)
