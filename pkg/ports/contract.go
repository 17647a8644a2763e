package ports

import (
	"testing"

	"github.com/aretw0/sprig/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StoreFactory builds a fresh, empty TodoStore for one contract case.
type StoreFactory func(t *testing.T) TodoStore

// RunStoreContract runs a suite of tests to verify that a TodoStore implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, newStore StoreFactory) {
	t.Run("Starts Empty", func(t *testing.T) {
		store := newStore(t)
		assert.Empty(t, store.GetState().Todos)
	})

	t.Run("Fold Equivalence", func(t *testing.T) {
		store := newStore(t)
		actions := []domain.Action{
			domain.AddTodo{Text: "a"},
			domain.AddTodo{Text: "b"},
			domain.AddTodo{Text: "c"},
			domain.MoveTodo{From: 0, To: 2},
			domain.RemoveTodo{Index: 0},
			domain.AddTodo{Text: "d"},
		}

		want := domain.State{}
		for _, a := range actions {
			var err error
			want, err = domain.Reduce(want, a)
			require.NoError(t, err)

			_, err = store.Dispatch(a)
			require.NoError(t, err)
		}

		assert.Equal(t, want.Todos, store.GetState().Todos)
		assert.Equal(t, []string{"c", "a", "d"}, store.GetState().Todos)
	})

	t.Run("Dispatch Returns Action", func(t *testing.T) {
		store := newStore(t)
		in := domain.AddTodo{Text: "same"}

		out, err := store.Dispatch(in)
		require.NoError(t, err)
		assert.Equal(t, domain.Action(in), out)
	})

	t.Run("ClearAll Is Idempotent", func(t *testing.T) {
		store := newStore(t)
		_, _ = store.Dispatch(domain.AddTodo{Text: "a"})

		_, err := store.Dispatch(domain.ClearAll{})
		require.NoError(t, err)
		once := store.GetState()

		_, err = store.Dispatch(domain.ClearAll{})
		require.NoError(t, err)

		assert.Equal(t, once, store.GetState())
		assert.Empty(t, store.GetState().Todos)
	})

	t.Run("Snapshot Isolation", func(t *testing.T) {
		store := newStore(t)
		_, _ = store.Dispatch(domain.AddTodo{Text: "a"})

		snap := store.GetState()
		snap.Todos[0] = "mutated"

		assert.Equal(t, []string{"a"}, store.GetState().Todos)
	})

	t.Run("Index Error Surfaces", func(t *testing.T) {
		store := newStore(t)
		_, _ = store.Dispatch(domain.AddTodo{Text: "a"})

		calls := 0
		d := store.Subscribe(func(domain.State) { calls++ })
		defer d.Dispose()

		_, err := store.Dispatch(domain.RemoveTodo{Index: 5})
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

		_, err = store.Dispatch(domain.MoveTodo{From: 0, To: 1})
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

		assert.Equal(t, []string{"a"}, store.GetState().Todos, "state must be unchanged")
		assert.Zero(t, calls, "rejected dispatch must not notify")
	})

	t.Run("Subscription Fidelity", func(t *testing.T) {
		store := newStore(t)

		var seen [][]string
		d := store.Subscribe(func(s domain.State) {
			seen = append(seen, s.Todos)
		})

		_, _ = store.Dispatch(domain.AddTodo{Text: "a"})
		_, _ = store.Dispatch(domain.AddTodo{Text: "b"})
		_, _ = store.Dispatch(domain.RemoveTodo{Index: 0})

		require.Len(t, seen, 3)
		assert.Equal(t, []string{"a"}, seen[0])
		assert.Equal(t, []string{"a", "b"}, seen[1])
		assert.Equal(t, []string{"b"}, seen[2])

		d.Dispose()
		d.Dispose()

		_, _ = store.Dispatch(domain.AddTodo{Text: "c"})
		_, _ = store.Dispatch(domain.ClearAll{})
		assert.Len(t, seen, 3, "disposed subscriber must not be notified")
	})

	t.Run("Registration Order", func(t *testing.T) {
		store := newStore(t)

		var order []string
		for _, name := range []string{"first", "second", "third"} {
			name := name
			d := store.Subscribe(func(domain.State) { order = append(order, name) })
			defer d.Dispose()
		}

		_, _ = store.Dispatch(domain.AddTodo{Text: "a"})
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("End To End Scenario", func(t *testing.T) {
		store := newStore(t)

		notifications := 0
		d := store.Subscribe(func(domain.State) { notifications++ })
		defer d.Dispose()

		for _, text := range []string{
			"Learn Redux for iOS",
			"Buy shampoo at Tops",
			"Watch series on Netflix",
			"Call daddy",
		} {
			_, err := store.Dispatch(domain.AddTodo{Text: text})
			require.NoError(t, err)
		}
		assert.Equal(t, []string{
			"Learn Redux for iOS",
			"Buy shampoo at Tops",
			"Watch series on Netflix",
			"Call daddy",
		}, store.GetState().Todos)

		_, err := store.Dispatch(domain.RemoveTodo{Index: 2})
		require.NoError(t, err)
		_, err = store.Dispatch(domain.RemoveTodo{Index: 0})
		require.NoError(t, err)
		assert.Equal(t, []string{"Buy shampoo at Tops", "Call daddy"}, store.GetState().Todos)

		_, err = store.Dispatch(domain.ClearAll{})
		require.NoError(t, err)
		assert.Empty(t, store.GetState().Todos)

		assert.Equal(t, 7, notifications)
	})
}
