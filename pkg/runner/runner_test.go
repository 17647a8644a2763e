package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(input string, opts ...Option) (*Runner, *bytes.Buffer, *sprig.TodoStore) {
	store := sprig.NewTodoStore()
	out := &bytes.Buffer{}
	opts = append([]Option{
		WithInput(strings.NewReader(input)),
		WithOutput(out),
		WithPrompt(""),
	}, opts...)
	return NewRunner(store, opts...), out, store
}

func TestRunner_Session(t *testing.T) {
	r, out, store := newTestRunner("add a\nadd b\nmv 0 1\nrm 9\nls\nquit\nadd never\n")

	require.NoError(t, r.Run(context.Background()))

	expected := "0. a\n" +
		"0. a\n1. b\n" +
		"0. b\n1. a\n" +
		"error: remove_todo: index 9 out of range [0,2)\n" +
		"0. b\n1. a\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, []string{"b", "a"}, store.GetState().Todos)
	assert.Equal(t, 0, store.Subscribers(), "view subscription must be disposed")
}

func TestRunner_EOFWithoutNewline(t *testing.T) {
	r, _, store := newTestRunner("add a\nadd b")

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"a", "b"}, store.GetState().Todos)
}

func TestRunner_BadCommands(t *testing.T) {
	r, out, store := newTestRunner("\n   \nfrobnicate\nrm x\nclear now\n")

	require.NoError(t, r.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "error: "), l)
	}
	assert.Equal(t, 0, store.GetState().Len())
}

func TestRunner_SanitizesText(t *testing.T) {
	r, _, store := newTestRunner("add \x1b[1mbold\x07\n")

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"[1mbold"}, store.GetState().Todos)
}

func TestRunner_HelpUsesRenderer(t *testing.T) {
	var rendered string
	r, out, _ := newTestRunner("help\n", WithRenderer(func(s string) (string, error) {
		rendered = s
		return "RENDERED\n", nil
	}))

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, HelpText, rendered)
	assert.Equal(t, "RENDERED\n", out.String())
}

func TestRunner_RendererErrorFallsBack(t *testing.T) {
	r, out, _ := newTestRunner("help\n", WithRenderer(func(s string) (string, error) {
		return "", errors.New("no terminal")
	}))

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "# Commands")
}

func TestRunner_CustomFormatter(t *testing.T) {
	r, out, _ := newTestRunner("add a\nclear\n", WithFormatter(func(s domain.State) string {
		return string(s.Change.Kind) + "\n"
	}))

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "insert\nreload\n", out.String())
}

func TestRunner_PromptIsPrinted(t *testing.T) {
	r, out, _ := newTestRunner("quit\n", WithPrompt("sprig> "))

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "sprig> ", out.String())
}

func TestRunner_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	store := sprig.NewTodoStore()
	r := NewRunner(store, WithInput(pr), WithOutput(io.Discard), WithPrompt(""))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	_, err := pw.Write([]byte("add a\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return store.GetState().Len() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop on cancel")
	}
}

func TestRunner_Replay(t *testing.T) {
	store := sprig.NewTodoStore()
	r := NewRunner(store, WithOutput(io.Discard))

	n, err := r.Replay(context.Background(), []domain.Action{
		domain.AddTodo{Text: "a"},
		domain.AddTodo{Text: "b"},
		domain.RemoveTodo{Index: 7},
		domain.AddTodo{Text: "never"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "action #3 (rm 7)")
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, store.GetState().Todos)
}

func TestRunner_ReplayCancelled(t *testing.T) {
	r := NewRunner(sprig.NewTodoStore(), WithOutput(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := r.Replay(ctx, []domain.Action{domain.AddTodo{Text: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "(empty)\n", FormatPlain(domain.NewState()))
	assert.Equal(t, "0. x\n1. y\n", FormatPlain(domain.NewState("x", "y")))
}

func TestRunner_QuitStopsReader(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	before := runtime.NumGoroutine()

	for i := 0; i < 10; i++ {
		// The input stays open after quit, as a terminal would.
		in := io.MultiReader(strings.NewReader("quit\nadd x\n"), pr)
		r := NewRunner(sprig.NewTodoStore(), WithInput(in), WithOutput(io.Discard), WithPrompt(""))
		require.NoError(t, r.Run(context.Background()))
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "reader goroutines must exit after quit")
}
