package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/sprig/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the source of command lines.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithOutput sets where the list and messages are written.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.Output = out
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown) used for help text.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithFormatter configures how a state is printed after each change.
func WithFormatter(format func(domain.State) string) Option {
	return func(r *Runner) {
		r.Format = format
	}
}

// WithPrompt sets the prompt printed before each line is read. Empty disables it.
func WithPrompt(prompt string) Option {
	return func(r *Runner) {
		r.Prompt = prompt
	}
}
