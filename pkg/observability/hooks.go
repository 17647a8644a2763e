package observability

import (
	"log/slog"

	"github.com/aretw0/sprig/pkg/domain"
)

// LoggingHooks logs every lifecycle event at Info (failed dispatches at Warn).
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			if e.Err != nil {
				logger.Warn("dispatch_failed",
					"store", e.Store,
					"kind", e.Kind,
					"err", e.Err,
				)
				return
			}
			logger.Info("dispatch",
				"store", e.Store,
				"kind", e.Kind,
				"subscribers", e.Subscribers,
				"duration", e.Duration,
			)
		},
		OnSubscribe: func(e *domain.SubscriptionEvent) {
			logger.Info("subscribe", "store", e.Store, "handle", e.Handle, "active", e.Active)
		},
		OnUnsubscribe: func(e *domain.SubscriptionEvent) {
			logger.Info("unsubscribe", "store", e.Store, "handle", e.Handle, "active", e.Active)
		},
	}
}

// CombineHooks fans each event out to every set of hooks, in order.
func CombineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			for _, h := range all {
				if h.OnDispatch != nil {
					h.OnDispatch(e)
				}
			}
		},
		OnSubscribe: func(e *domain.SubscriptionEvent) {
			for _, h := range all {
				if h.OnSubscribe != nil {
					h.OnSubscribe(e)
				}
			}
		},
		OnUnsubscribe: func(e *domain.SubscriptionEvent) {
			for _, h := range all {
				if h.OnUnsubscribe != nil {
					h.OnUnsubscribe(e)
				}
			}
		},
	}
}
