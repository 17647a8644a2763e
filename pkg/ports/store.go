package ports

import "github.com/aretw0/sprig/pkg/domain"

// Disposable cancels a subscription.
type Disposable interface {
	// Dispose removes the subscription. Calling it more than once is a no-op.
	Dispose()
}

// Store defines the surface a view layer uses to talk to a state container.
// Views must not reach into store internals; these three operations are all they get.
type Store[S, A any] interface {
	// GetState returns a snapshot of the current state.
	// The snapshot never aliases the store's internals.
	GetState() S

	// Dispatch applies the action and notifies subscribers.
	// It returns the action unchanged, plus the reducer's error if it rejected the action.
	Dispatch(action A) (A, error)

	// Subscribe registers a callback invoked with the new state after every successful dispatch.
	Subscribe(fn func(S)) Disposable
}

// TodoStore is the Store specialized to the todo-list domain.
type TodoStore = Store[domain.State, domain.Action]

// StateDispatcher is implemented by stores that can report the state a dispatch produced.
type StateDispatcher[S, A any] interface {
	DispatchState(action A) (S, error)
}

// DispatchState dispatches action and returns the state it produced.
// Stores without StateDispatcher fall back to GetState, which may already include
// dispatches from other goroutines.
func DispatchState[S, A any](store Store[S, A], action A) (S, error) {
	if sd, ok := store.(StateDispatcher[S, A]); ok {
		return sd.DispatchState(action)
	}
	if _, err := store.Dispatch(action); err != nil {
		var zero S
		return zero, err
	}
	return store.GetState(), nil
}
