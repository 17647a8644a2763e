package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/sprig/internal/logging"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
	"github.com/aretw0/sprig/pkg/registry"
)

// Reducer computes the next state for an action. It must be pure.
type Reducer[S, A any] func(state S, action A) (S, error)

// Cloner is implemented by states that hold references (slices, maps).
// The store clones such states on the way in and on the way out.
type Cloner[S any] interface {
	Clone() S
}

// Kinded is implemented by actions that can name their variant.
type Kinded interface {
	Kind() domain.ActionKind
}

// Store is the single owner of the current state.
// Dispatches are serialized end to end: the reducer and the whole notification pass of one
// dispatch finish before another goroutine's dispatch starts, so every subscriber sees states
// in reducer order. A subscriber may dispatch on its own goroutine; that nested dispatch runs
// to completion before the outer pass continues.
// State and registry access is guarded by a second, short mutex, so subscribers may also read,
// subscribe or dispose. Reducers run under it and must not call back into the same store,
// and a subscriber must not wait on another goroutine that dispatches to the same store.
type Store[S, A any] struct {
	pass    *passLock
	mu      sync.Mutex
	reducer Reducer[S, A]
	current S
	subs    *registry.Registry[S]

	logger *slog.Logger
	hooks  domain.LifecycleHooks
	name   string
}

// NewStore creates a store whose initial state is the reducer's answer to the
// zero state and the zero action.
func NewStore[S, A any](reducer Reducer[S, A], opts ...Option) (*Store[S, A], error) {
	s := newStore(reducer, opts)

	var zeroState S
	var initAction A
	initial, err := reducer(zeroState, initAction)
	if err != nil {
		return nil, fmt.Errorf("failed to compute initial state: %w", err)
	}
	s.current = initial

	s.logger.Debug("store created", "seed", "reducer")
	return s, nil
}

// NewStoreWithState creates a store seeded with initial.
func NewStoreWithState[S, A any](reducer Reducer[S, A], initial S, opts ...Option) *Store[S, A] {
	s := newStore(reducer, opts)
	s.current = clone(initial)

	s.logger.Debug("store created", "seed", "initial_state")
	return s
}

func newStore[S, A any](reducer Reducer[S, A], opts []Option) *Store[S, A] {
	cfg := &config{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if cfg.name != "" {
		logger = logger.With("store", cfg.name)
	}

	return &Store[S, A]{
		pass:    newPassLock(),
		reducer: reducer,
		subs:    registry.NewRegistry[S](),
		logger:  logger,
		hooks:   cfg.hooks,
		name:    cfg.name,
	}
}

// GetState returns a snapshot of the current state.
func (s *Store[S, A]) GetState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// Dispatch applies action and notifies subscribers with the resulting state.
// It returns action unchanged. If the reducer fails, the state is kept and no one is notified.
func (s *Store[S, A]) Dispatch(action A) (A, error) {
	_, err := s.dispatch(action)
	return action, err
}

// DispatchState is Dispatch returning the state this action produced,
// which GetState can no longer guarantee once other goroutines dispatch.
func (s *Store[S, A]) DispatchState(action A) (S, error) {
	return s.dispatch(action)
}

func (s *Store[S, A]) dispatch(action A) (S, error) {
	start := time.Now()
	kind := kindOf(action)

	s.pass.lock()
	defer s.pass.unlock()

	s.mu.Lock()
	next, err := s.reducer(s.current, action)
	if err != nil {
		current := clone(s.current)
		s.mu.Unlock()
		s.logger.Warn("dispatch rejected", "kind", kind, "err", err)
		s.emitDispatch(kind, start, 0, err)
		return current, err
	}
	s.current = next
	snapshot := s.subs.Snapshot()
	s.mu.Unlock()

	s.logger.Debug("dispatch", "kind", kind, "subscribers", len(snapshot))

	notified := 0
	for _, entry := range snapshot {
		// Disposed after the snapshot was taken.
		if !entry.Active() {
			continue
		}
		entry.Call(clone(next))
		notified++
	}

	s.emitDispatch(kind, start, notified, nil)
	return clone(next), nil
}

// Subscribe registers fn to be called after every successful dispatch.
func (s *Store[S, A]) Subscribe(fn func(S)) ports.Disposable {
	s.mu.Lock()
	h := s.subs.Add(fn)
	active := s.subs.Len()
	s.mu.Unlock()

	s.logger.Debug("subscribed", "handle", h.String(), "active", active)
	s.emitSubscription(s.hooks.OnSubscribe, domain.EventSubscribe, h, active)

	return &Subscription{
		handle: h,
		remove: func() {
			s.unsubscribe(h)
		},
	}
}

// Subscribers returns the number of registered callbacks.
func (s *Store[S, A]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs.Len()
}

// Name returns the label given with WithName.
func (s *Store[S, A]) Name() string {
	return s.name
}

func (s *Store[S, A]) unsubscribe(h registry.Handle) {
	s.mu.Lock()
	removed := s.subs.Remove(h)
	active := s.subs.Len()
	s.mu.Unlock()

	if !removed {
		return
	}
	s.logger.Debug("unsubscribed", "handle", h.String(), "active", active)
	s.emitSubscription(s.hooks.OnUnsubscribe, domain.EventUnsubscribe, h, active)
}

func (s *Store[S, A]) emitDispatch(kind string, start time.Time, notified int, err error) {
	if s.hooks.OnDispatch == nil {
		return
	}
	s.hooks.OnDispatch(&domain.DispatchEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventDispatch,
			Store:     s.name,
		},
		Kind:        kind,
		Duration:    time.Since(start),
		Subscribers: notified,
		Err:         err,
	})
}

func (s *Store[S, A]) emitSubscription(hook func(*domain.SubscriptionEvent), typ domain.EventType, h registry.Handle, active int) {
	if hook == nil {
		return
	}
	hook(&domain.SubscriptionEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      typ,
			Store:     s.name,
		},
		Handle: h.String(),
		Active: active,
	})
}

// Subscription is the ports.Disposable returned by Subscribe.
type Subscription struct {
	handle registry.Handle
	once   sync.Once
	remove func()
}

// Dispose cancels the subscription. Calling it more than once is a no-op.
func (d *Subscription) Dispose() {
	d.once.Do(d.remove)
}

// Handle returns the registry handle of the subscription.
func (d *Subscription) Handle() string {
	return d.handle.String()
}

func clone[S any](v S) S {
	if c, ok := any(v).(Cloner[S]); ok {
		return c.Clone()
	}
	return v
}

func kindOf(action any) string {
	switch a := action.(type) {
	case nil:
		return string(domain.KindInit)
	case Kinded:
		return string(a.Kind())
	default:
		return fmt.Sprintf("%T", action)
	}
}
