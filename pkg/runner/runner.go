package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/sprig/internal/logging"
	"github.com/aretw0/sprig/pkg/codec"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/ports"
)

// DefaultPrompt is printed before each command line.
const DefaultPrompt = "> "

// HelpText lists the commands understood by the runner, in Markdown.
const HelpText = `# Commands

| Command | Effect |
| --- | --- |
| ` + "`add <text>`" + ` | append a todo |
| ` + "`rm <index>`" + ` | remove the todo at index |
| ` + "`mv <from> <to>`" + ` | move a todo so it ends at *to* |
| ` + "`clear`" + ` | remove every todo |
| ` + "`ls`" + ` | print the list |
| ` + "`help`" + ` | show this help |
| ` + "`quit`" + ` | leave |
`

// ContentRenderer transforms text before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Runner drives a TodoStore from a line-oriented text stream.
// The list is printed by a store subscriber, so every view update comes from a notification.
type Runner struct {
	Store    ports.TodoStore
	Input    io.Reader
	Output   io.Writer
	Logger   *slog.Logger
	Renderer ContentRenderer
	Format   func(domain.State) string
	Prompt   string
}

// NewRunner creates a Runner over store reading Stdin and writing Stdout.
func NewRunner(store ports.TodoStore, opts ...Option) *Runner {
	r := &Runner{
		Store:  store,
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: logging.NewNop(),
		Format: FormatPlain,
		Prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type line struct {
	text string
	err  error
}

// Run reads commands until EOF, quit or ctx is cancelled.
// Rejected commands are reported on Output and the loop continues.
func (r *Runner) Run(ctx context.Context) error {
	// Stops the pump once the session ends, whatever the caller does with ctx.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := r.Store.Subscribe(func(state domain.State) {
		fmt.Fprint(r.Output, r.Format(state))
	})
	defer sub.Dispose()

	lines := r.pump(ctx)

	for {
		if r.Prompt != "" {
			fmt.Fprint(r.Output, r.Prompt)
		}

		var in line
		var ok bool
		select {
		case <-ctx.Done():
			r.Logger.Debug("Runner: Context cancelled")
			return nil
		case in, ok = <-lines:
			if !ok {
				return nil
			}
		}

		if in.err != nil {
			if errors.Is(in.err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", in.err)
		}

		if done := r.handle(in.text); done {
			return nil
		}
	}
}

// Replay dispatches actions in order and stops at the first rejected one.
// It returns how many actions were applied.
func (r *Runner) Replay(ctx context.Context, actions []domain.Action) (int, error) {
	for i, action := range actions {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := r.Store.Dispatch(action); err != nil {
			return i, fmt.Errorf("action #%d (%s): %w", i+1, codec.FormatCommand(action), err)
		}
	}
	return len(actions), nil
}

// handle executes one line and reports whether the session is over.
func (r *Runner) handle(raw string) bool {
	text, err := SanitizeInput(raw)
	if err != nil {
		r.Logger.Warn("Runner: Input rejected", "err", err, "size", len(raw))
		fmt.Fprintf(r.Output, "error: %v\n", err)
		return false
	}
	text = strings.TrimSpace(text)

	switch strings.ToLower(text) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "ls", "list":
		fmt.Fprint(r.Output, r.Format(r.Store.GetState()))
		return false
	case "help", "?":
		fmt.Fprintln(r.Output, strings.TrimSpace(r.render(HelpText)))
		return false
	}

	action, err := codec.ParseCommand(text)
	if err != nil {
		fmt.Fprintf(r.Output, "error: %v (type help)\n", err)
		return false
	}

	if _, err := r.Store.Dispatch(action); err != nil {
		r.Logger.Debug("Runner: Action rejected", "kind", domain.KindOf(action), "err", err)
		fmt.Fprintf(r.Output, "error: %v\n", err)
	}
	return false
}

func (r *Runner) render(content string) string {
	if r.Renderer == nil {
		return content
	}
	rendered, err := r.Renderer(content)
	if err != nil {
		r.Logger.Debug("Runner: Render failed", "err", err)
		return content
	}
	return rendered
}

// pump reads lines in the background so Run can stop on ctx without waiting for input.
// After ctx is done the goroutine exits as soon as its pending read returns.
func (r *Runner) pump(ctx context.Context) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		reader := bufio.NewReader(r.Input)
		for ctx.Err() == nil {
			text, err := reader.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && text != "") {
				select {
				case ch <- line{err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- line{text: strings.TrimRight(text, "\r\n")}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// FormatPlain renders a state as a numbered list, one todo per line.
func FormatPlain(state domain.State) string {
	if state.Len() == 0 {
		return "(empty)\n"
	}
	var b strings.Builder
	for i, todo := range state.Todos {
		fmt.Fprintf(&b, "%d. %s\n", i, todo)
	}
	return b.String()
}
