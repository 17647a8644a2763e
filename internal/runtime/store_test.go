package runtime_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/sprig/internal/runtime"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodoStore(t *testing.T, opts ...runtime.Option) *runtime.Store[domain.State, domain.Action] {
	t.Helper()
	store, err := runtime.NewStore[domain.State, domain.Action](domain.Reduce, opts...)
	require.NoError(t, err)
	return store
}

func TestStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, func(t *testing.T) ports.TodoStore {
		return newTodoStore(t)
	})
}

func TestStore_SeedsThroughReducer(t *testing.T) {
	var seenAction domain.Action = domain.AddTodo{}
	var seenState domain.State
	calls := 0

	reducer := func(s domain.State, a domain.Action) (domain.State, error) {
		calls++
		seenState, seenAction = s, a
		return domain.Reduce(s, a)
	}

	store, err := runtime.NewStore[domain.State, domain.Action](reducer)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Nil(t, seenAction, "seed must use the zero action")
	assert.Nil(t, seenState.Todos, "seed must start from the zero state")
	assert.Equal(t, []string{}, store.GetState().Todos)
	assert.Equal(t, domain.NoChange(), store.GetState().Change)
}

func TestStore_SeedError(t *testing.T) {
	boom := errors.New("boom")
	_, err := runtime.NewStore[int, string](func(int, string) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestStore_WithInitialState(t *testing.T) {
	initial := domain.NewState("x", "y")
	store := runtime.NewStoreWithState[domain.State, domain.Action](domain.Reduce, initial)

	initial.Todos[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, store.GetState().Todos, "store must not alias the seed")

	_, err := store.Dispatch(domain.MoveTodo{From: 1, To: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, store.GetState().Todos)
}

func TestStore_PlainValueState(t *testing.T) {
	counter := func(n int, delta int) (int, error) {
		return n + delta, nil
	}
	store := runtime.NewStoreWithState[int, int](counter, 10)

	var got []int
	store.Subscribe(func(n int) { got = append(got, n) })

	_, _ = store.Dispatch(5)
	_, _ = store.Dispatch(-3)

	assert.Equal(t, 12, store.GetState())
	assert.Equal(t, []int{15, 12}, got)
}

func TestStore_SubscriberReceivesCopy(t *testing.T) {
	store := newTodoStore(t)

	store.Subscribe(func(s domain.State) {
		s.Todos[0] = "scribbled"
	})
	var second domain.State
	store.Subscribe(func(s domain.State) { second = s })

	_, err := store.Dispatch(domain.AddTodo{Text: "clean"})
	require.NoError(t, err)

	assert.Equal(t, []string{"clean"}, second.Todos)
	assert.Equal(t, []string{"clean"}, store.GetState().Todos)
}

func TestStore_Subscribers(t *testing.T) {
	store := newTodoStore(t, runtime.WithName("todos"))
	assert.Equal(t, "todos", store.Name())

	d1 := store.Subscribe(func(domain.State) {})
	d2 := store.Subscribe(func(domain.State) {})
	assert.Equal(t, 2, store.Subscribers())

	d1.Dispose()
	d1.Dispose()
	assert.Equal(t, 1, store.Subscribers())

	d2.Dispose()
	assert.Zero(t, store.Subscribers())
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := newTodoStore(t)

	var mu sync.Mutex
	notifications := 0
	store.Subscribe(func(domain.State) {
		mu.Lock()
		notifications++
		mu.Unlock()
	})

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := store.Dispatch(domain.AddTodo{Text: "item"})
				assert.NoError(t, err)
				_ = store.GetState()
			}
		}()
	}

	// Churn the registry while dispatches are in flight.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			store.Subscribe(func(domain.State) {}).Dispose()
		}
	}()
	wg.Wait()

	assert.Equal(t, workers*perWorker, store.GetState().Len())
	assert.Equal(t, workers*perWorker, notifications)
}

func TestStore_PassesDoNotOvertake(t *testing.T) {
	store := newTodoStore(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	var seen []int
	store.Subscribe(func(s domain.State) {
		mu.Lock()
		seen = append(seen, s.Len())
		mu.Unlock()
		if s.Len() == 1 {
			close(entered)
			<-release
		}
	})

	firstDone := make(chan error, 1)
	go func() {
		_, err := store.Dispatch(domain.AddTodo{Text: "a"})
		firstDone <- err
	}()
	<-entered

	secondDone := make(chan error, 1)
	go func() {
		_, err := store.Dispatch(domain.AddTodo{Text: "b"})
		secondDone <- err
	}()

	select {
	case <-secondDone:
		t.Fatal("second dispatch completed while the first pass was still running")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, store.GetState().Len(), "second reducer must wait for the first pass")

	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, seen)
}

func TestStore_ConcurrentDispatchIsOrdered(t *testing.T) {
	store := newTodoStore(t)

	var inFlight atomic.Int32
	var overlap atomic.Bool
	var seen []int // written by one pass at a time
	store.Subscribe(func(s domain.State) {
		if inFlight.Add(1) > 1 {
			overlap.Store(true)
		}
		seen = append(seen, s.Len())
		inFlight.Add(-1)
	})

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := store.Dispatch(domain.AddTodo{Text: "item"})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load(), "a subscriber must never run on two goroutines at once")
	require.Len(t, seen, workers*perWorker)
	for i, n := range seen {
		assert.Equal(t, i+1, n, "notification %d out of order", i)
	}
}

func TestStore_DispatchState(t *testing.T) {
	store := runtime.NewStoreWithState[domain.State, domain.Action](domain.Reduce, domain.NewState("a"))

	state, err := store.DispatchState(domain.AddTodo{Text: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, state.Todos)

	state.Todos[0] = "scribbled"
	assert.Equal(t, []string{"a", "b"}, store.GetState().Todos, "returned state must not alias the store")

	state, err = store.DispatchState(domain.RemoveTodo{Index: 9})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, []string{"a", "b"}, state.Todos, "a rejected action reports the unchanged state")
}

func TestStore_DispatchStateUnderContention(t *testing.T) {
	store := newTodoStore(t)

	const workers = 16
	lens := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := ports.DispatchState[domain.State, domain.Action](store, domain.AddTodo{Text: "x"})
			assert.NoError(t, err)
			lens <- state.Len()
		}()
	}
	wg.Wait()
	close(lens)

	// Every caller sees the list its own action produced, so no length repeats.
	got := map[int]bool{}
	for n := range lens {
		assert.False(t, got[n], "length %d reported twice", n)
		got[n] = true
	}
	assert.Len(t, got, workers)
}
