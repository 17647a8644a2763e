package registry

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Handle identifies a registered callback.
// A Handle stays unique for the lifetime of its Registry even after its slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// String renders the handle as "index:generation".
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.gen)
}

// Entry is a registered callback.
type Entry[T any] struct {
	fn     func(T)
	seq    uint64
	handle Handle
	active atomic.Bool
}

// Handle returns the handle the entry was registered under.
func (e *Entry[T]) Handle() Handle {
	return e.handle
}

// Active reports whether the entry is still registered.
// Snapshots keep removed entries around; callers check this before invoking.
func (e *Entry[T]) Active() bool {
	return e.active.Load()
}

// Call invokes the callback.
func (e *Entry[T]) Call(v T) {
	e.fn(v)
}

type slot[T any] struct {
	gen   uint32
	entry *Entry[T]
}

// Registry is an arena of callbacks indexed by generational handles.
// Add and Remove are O(1). It is not safe for concurrent use; the owner serializes access.
type Registry[T any] struct {
	slots []slot[T]
	free  []uint32
	seq   uint64
	live  int
}

// NewRegistry creates a new empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add registers fn and returns its handle.
func (r *Registry[T]) Add(fn func(T)) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot[T]{})
	}

	s := &r.slots[idx]
	s.gen++
	r.seq++

	e := &Entry[T]{
		fn:     fn,
		seq:    r.seq,
		handle: Handle{index: idx, gen: s.gen},
	}
	e.active.Store(true)
	s.entry = e
	r.live++

	return e.handle
}

// Remove unregisters the callback for h.
// Returns false if h was already removed or never belonged to this registry.
func (r *Registry[T]) Remove(h Handle) bool {
	if int(h.index) >= len(r.slots) {
		return false
	}
	s := &r.slots[h.index]
	if s.entry == nil || s.gen != h.gen {
		return false
	}

	s.entry.active.Store(false)
	s.entry = nil
	r.free = append(r.free, h.index)
	r.live--
	return true
}

// Snapshot returns the live entries in registration order.
func (r *Registry[T]) Snapshot() []*Entry[T] {
	out := make([]*Entry[T], 0, r.live)
	for i := range r.slots {
		if e := r.slots[i].entry; e != nil {
			out = append(out, e)
		}
	}
	// Reused slots break index order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].seq < out[j].seq
	})
	return out
}

// Len returns the number of registered callbacks.
func (r *Registry[T]) Len() int {
	return r.live
}
