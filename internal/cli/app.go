package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sprig"
	"github.com/aretw0/sprig/internal/config"
	"github.com/aretw0/sprig/internal/presentation/tui"
	"github.com/aretw0/sprig/pkg/domain"
	"github.com/aretw0/sprig/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// Options carries the persistent flags shared by every command.
type Options struct {
	// ConfigPath is the config file; empty means config.DefaultPath, which may be absent.
	ConfigPath string
	// LogLevel overrides the configured level when set.
	LogLevel string
	// Out receives the todo list and system messages. Nil means Stdout.
	Out io.Writer
}

// App is a store wired with logging and metrics, ready for a command to drive.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Store   *sprig.TodoStore
	Out     io.Writer
	Colored bool
}

// Setup loads configuration and builds the store for a command.
func Setup(opts Options) (*App, error) {
	path, required := opts.ConfigPath, true
	if path == "" {
		path, required = config.DefaultPath, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := NewLogger(level)
	if err != nil {
		return nil, err
	}

	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	store := sprig.NewTodoStoreWithTodos(cfg.Seed,
		sprig.WithName("todos"),
		sprig.WithLogger(logger),
		sprig.WithLifecycleHooks(observability.CombineHooks(
			observability.LoggingHooks(logger),
			metrics.Hooks(),
		)),
	)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Store:   store,
		Out:     out,
		Colored: IsTerminal(out),
	}, nil
}

// Format renders a state for this app's output.
func (a *App) Format(state domain.State) string {
	return tui.FormatTodos(state, a.Colored)
}
