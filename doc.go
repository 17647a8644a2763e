/*
Package sprig is a small unidirectional state container: a store that owns one state value,
a pure reducer that computes the next state from an action, and subscribers that are told
about every change.

# Concept

A Store is created once from a Reducer. Views read the current snapshot with GetState,
request changes with Dispatch, and react to changes through Subscribe. The Store is the
only writer of its state. The todo-list domain in pkg/domain is the reference payload.

# Guarantees

  - GetState always returns the result of the last successful reducer application.
  - Dispatch is synchronous. When it returns, every subscriber has seen the new state.
  - Subscribers are called in registration order with the state of the dispatch that triggered the pass.
  - Dispatches from different goroutines never interleave: states reach subscribers in reducer order.
  - A disposed subscription is never called again, even later in a pass already in flight.
  - A rejected action (e.g. an out-of-range index) leaves the state untouched and notifies no one.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/sprig"
		"github.com/aretw0/sprig/pkg/domain"
	)

	func main() {
		store := sprig.NewTodoStore()

		sub := store.Subscribe(func(s domain.State) {
			fmt.Println(s.Todos)
		})
		defer sub.Dispose()

		if _, err := store.Dispatch(domain.AddTodo{Text: "Buy shampoo"}); err != nil {
			log.Fatal(err)
		}
		if _, err := store.Dispatch(domain.RemoveTodo{Index: 3}); err != nil {
			log.Println("rejected:", err)
		}
	}
*/
package sprig
