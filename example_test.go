package sprig_test

import (
	"errors"
	"fmt"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/pkg/domain"
)

// ExampleNewTodoStore runs the reference scenario: four adds, two removes and a clear,
// observed by one subscriber.
func ExampleNewTodoStore() {
	store := sprig.NewTodoStore()

	notifications := 0
	sub := store.Subscribe(func(s domain.State) {
		notifications++
	})
	defer sub.Dispose()

	for _, text := range []string{
		"Learn Redux for iOS",
		"Buy shampoo at Tops",
		"Watch series on Netflix",
		"Call daddy",
	} {
		store.Dispatch(domain.AddTodo{Text: text})
	}
	store.Dispatch(domain.RemoveTodo{Index: 2})
	store.Dispatch(domain.RemoveTodo{Index: 0})
	fmt.Println(store.GetState().Todos)

	store.Dispatch(domain.ClearAll{})
	fmt.Println(store.GetState().Todos, notifications)

	// Output:
	// [Buy shampoo at Tops Call daddy]
	// [] 7
}

// ExampleNewTodoStoreWithTodos shows how a rejected action is reported.
func ExampleNewTodoStoreWithTodos() {
	store := sprig.NewTodoStoreWithTodos([]string{"only"})

	_, err := store.Dispatch(domain.RemoveTodo{Index: 1})
	fmt.Println(errors.Is(err, domain.ErrIndexOutOfRange))
	fmt.Println(err)
	fmt.Println(store.GetState().Todos)

	// Output:
	// true
	// remove_todo: index 1 out of range [0,1)
	// [only]
}
