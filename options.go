package vista

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// Identities for the processors built by options.
var (
	notifyID       = pipz.NewIdentity("vista:notify", "Caller notification callback")
	retryID        = pipz.NewIdentity("vista:retry", "Retries the notification")
	backoffID      = pipz.NewIdentity("vista:backoff", "Retries the notification with backoff")
	timeoutID      = pipz.NewIdentity("vista:timeout", "Bounds the notification duration")
	fallbackID     = pipz.NewIdentity("vista:fallback", "Falls back to alternative notifiers")
	errorHandlerID = pipz.NewIdentity("vista:error-handler", "Observes notification errors")
	middlewareID   = pipz.NewIdentity("vista:middleware", "Runs processors before the notification")
)

// Option configures the notification pipeline of a Latch. Pipeline options
// wrap the callback with middleware for retry, timeout and similar
// reliability patterns.
//
// Instance configuration (debounce, clock, strategy, etc.) is handled via
// chainable methods on the Latch before calling Start().
type Option func(pipz.Chainable[*Notice]) pipz.Chainable[*Notice]

// buildPipeline wraps a terminal with pipeline options.
func buildPipeline(terminal pipz.Chainable[*Notice], opts []Option) pipz.Chainable[*Notice] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// WithRetry retries a failing notification immediately, up to maxAttempts
// times in total. The latch still fires once; only delivery is retried.
func WithRetry(maxAttempts int) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		return pipz.NewRetry(retryID, p, maxAttempts)
	}
}

// WithBackoff retries a failing notification with exponential backoff:
// baseDelay, 2*baseDelay, 4*baseDelay, etc.
func WithBackoff(maxAttempts int, baseDelay time.Duration) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		return pipz.NewBackoff(backoffID, p, maxAttempts, baseDelay)
	}
}

// WithTimeout bounds how long the notification may run.
func WithTimeout(d time.Duration) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		return pipz.NewTimeout(timeoutID, p, d)
	}
}

// WithFallback tries each fallback in order when the notification fails.
func WithFallback(fallbacks ...pipz.Chainable[*Notice]) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		all := append([]pipz.Chainable[*Notice]{p}, fallbacks...)
		return pipz.NewFallback(fallbackID, all...)
	}
}

// WithErrorHandler passes notification errors to handler for logging or
// alerting. The error still propagates and is recorded by the latch.
func WithErrorHandler(handler pipz.Chainable[*pipz.Error[*Notice]]) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		return pipz.NewHandle(errorHandlerID, p, handler)
	}
}

// WithMiddleware runs processors in order before the notification.
//
// Example:
//
//	latch := vista.New("hero", host, notify,
//	    vista.WithMiddleware(
//	        vista.UseEffect(logID, logFn),
//	    ),
//	    vista.WithTimeout(time.Second),
//	)
func WithMiddleware(processors ...pipz.Chainable[*Notice]) Option {
	return func(p pipz.Chainable[*Notice]) pipz.Chainable[*Notice] {
		all := make([]pipz.Chainable[*Notice], 0, len(processors)+1)
		all = append(all, processors...)
		all = append(all, p)
		return pipz.NewSequence(middlewareID, all...)
	}
}

// UseEffect creates a processor that performs a side effect.
// The notice passes through unchanged.
func UseEffect(identity pipz.Identity, fn func(context.Context, *Notice) error) pipz.Chainable[*Notice] {
	return pipz.Effect(identity, fn)
}

// UseApply creates a processor that can modify the notice and fail.
func UseApply(identity pipz.Identity, fn func(context.Context, *Notice) (*Notice, error)) pipz.Chainable[*Notice] {
	return pipz.Apply(identity, fn)
}

// UseTransform creates a processor that modifies the notice and cannot fail.
func UseTransform(identity pipz.Identity, fn func(context.Context, *Notice) *Notice) pipz.Chainable[*Notice] {
	return pipz.Transform(identity, fn)
}

// notifyTerminal adapts a Notify callback to the end of the pipeline.
// A nil callback is a no-op.
func notifyTerminal(fn Notify) pipz.Chainable[*Notice] {
	return pipz.Effect(notifyID, func(ctx context.Context, n *Notice) error {
		if fn == nil {
			return nil
		}
		return fn(ctx, *n)
	})
}
