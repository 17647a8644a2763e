package sprig_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
)

func TestFacade_Contract(t *testing.T) {
	ports.RunStoreContract(t, func(t *testing.T) ports.TodoStore {
		return sprig.NewTodoStore()
	})
}

func TestFacade_SeededStore(t *testing.T) {
	store := sprig.NewTodoStoreWithTodos([]string{"a", "b", "c"}, sprig.WithName("seeded"))

	if _, err := store.Dispatch(domain.MoveTodo{From: 0, To: 2}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	got := strings.Join(store.GetState().Todos, ",")
	if got != "b,c,a" {
		t.Errorf("Expected b,c,a, got %s", got)
	}
	if store.Name() != "seeded" {
		t.Errorf("Expected name 'seeded', got %q", store.Name())
	}
}

func TestFacade_GenericStore(t *testing.T) {
	type toggle struct{}
	store, err := sprig.NewStore(func(on bool, _ toggle) (bool, error) {
		return !on, nil
	})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// Seeded by one pass of the zero action over the zero state.
	if !store.GetState() {
		t.Fatal("Expected seed to be true")
	}

	if _, err := store.Dispatch(toggle{}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if store.GetState() {
		t.Error("Expected false after toggle")
	}
}

func TestVersion(t *testing.T) {
	if strings.TrimSpace(sprig.Version) == "" {
		t.Error("Version must not be empty")
	}
}
