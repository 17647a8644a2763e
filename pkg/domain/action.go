package domain

// ActionKind identifies the variant of an Action.
type ActionKind string

// Standard Action Kinds
const (
	// KindAddTodo appends an item to the end of the list.
	// Payload: string (the text)
	KindAddTodo ActionKind = "add_todo"

	// KindRemoveTodo removes the item at a position.
	// Payload: int (the index)
	KindRemoveTodo ActionKind = "remove_todo"

	// KindMoveTodo moves an item from one position to another.
	// Payload: (int, int)
	KindMoveTodo ActionKind = "move_todo"

	// KindClearAll empties the list.
	KindClearAll ActionKind = "clear_all"

	// KindInit is the synthetic action used to seed a store without initial state.
	KindInit ActionKind = "@@init"
)

// Action is an immutable description of an intended state transition.
// The set of variants is closed: only the types declared in this package implement it.
type Action interface {
	Kind() ActionKind
	isAction()
}

// AddTodo appends Text to the list.
type AddTodo struct {
	Text string `json:"text" yaml:"text" mapstructure:"text"`
}

// RemoveTodo removes the item at Index.
type RemoveTodo struct {
	Index int `json:"index" yaml:"index" mapstructure:"index"`
}

// MoveTodo removes the item at From and inserts it at To.
// To is interpreted against the list after removal.
type MoveTodo struct {
	From int `json:"from" yaml:"from" mapstructure:"from"`
	To   int `json:"to" yaml:"to" mapstructure:"to"`
}

// ClearAll empties the list.
type ClearAll struct{}

// Init is the default action. The reducer passes state through unchanged.
type Init struct{}

func (AddTodo) Kind() ActionKind    { return KindAddTodo }
func (RemoveTodo) Kind() ActionKind { return KindRemoveTodo }
func (MoveTodo) Kind() ActionKind   { return KindMoveTodo }
func (ClearAll) Kind() ActionKind   { return KindClearAll }
func (Init) Kind() ActionKind       { return KindInit }

func (AddTodo) isAction()    {}
func (RemoveTodo) isAction() {}
func (MoveTodo) isAction()   {}
func (ClearAll) isAction()   {}
func (Init) isAction()       {}

// KindOf returns the kind of a, treating nil as KindInit.
func KindOf(a Action) ActionKind {
	if a == nil {
		return KindInit
	}
	return a.Kind()
}
