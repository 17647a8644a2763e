package runtime

import (
	"log/slog"

	"github.com/aretw0/sprig/pkg/domain"
)

// Option defines a functional option for configuring a Store.
type Option func(*config)

type config struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	name   string
}

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithName labels the store in logs and events.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
