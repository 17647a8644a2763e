package domain

// ChangeKind tells the view what kind of update produced a State.
type ChangeKind string

const (
	ChangeNone   ChangeKind = "none"   // Nothing changed (default/unknown action)
	ChangeInsert ChangeKind = "insert" // A row was inserted at To
	ChangeDelete ChangeKind = "delete" // The row at From was deleted
	ChangeMove   ChangeKind = "move"   // The row at From now lives at To
	ChangeReload ChangeKind = "reload" // The whole list must be redrawn
)

// NoIndex marks an absent position in a Change.
const NoIndex = -1

// Change hints which rows were touched by the last transition.
// It is recomputed on every dispatch and is not part of the durable list.
type Change struct {
	Kind ChangeKind `json:"kind"`
	From int        `json:"from"`
	To   int        `json:"to"`
}

// NoChange is the hint for transitions that leave the list as is.
func NoChange() Change {
	return Change{Kind: ChangeNone, From: NoIndex, To: NoIndex}
}

// Reload is the hint for transitions that replace the whole list.
// Its indices are numerically identical to NoChange; Kind tells them apart.
func Reload() Change {
	return Change{Kind: ChangeReload, From: NoIndex, To: NoIndex}
}

// State is the snapshot held by a todo store.
type State struct {
	// Todos is the ordered list of items.
	Todos []string `json:"todos"`

	// Change describes the rows affected by the transition that produced this State.
	Change Change `json:"change"`
}

// NewState creates a State holding a copy of todos.
func NewState(todos ...string) State {
	s := State{
		Todos:  make([]string, len(todos)),
		Change: NoChange(),
	}
	copy(s.Todos, todos)
	return s
}

// Clone returns a deep copy so callers can't mutate the original through the slice.
func (s State) Clone() State {
	next := s
	if s.Todos != nil {
		next.Todos = make([]string, len(s.Todos))
		copy(next.Todos, s.Todos)
	}
	return next
}

// Len returns the number of items.
func (s State) Len() int {
	return len(s.Todos)
}
