package vista

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
)

// Strategy names reported in signals and notices.
const (
	StrategyObserver = "observer"
	StrategyPoll     = "poll"
	StrategyCheck    = "check"
)

// DefaultDebounce is the quiescence period used to coalesce scroll signals.
const DefaultDebounce = 250 * time.Millisecond

// Detection is a single detection signal delivered by a strategy.
type Detection struct {
	Target         string
	Bounds         Rect
	ViewportHeight float64
	Intersecting   bool
	Source         string
}

// DetectionStrategy is a mechanism that reports detections for one target.
//
// Start attaches the mechanism and returns once it is attached. onChange
// is invoked from the strategy's own goroutine, never from within Start.
// Stop detaches the mechanism; it is idempotent and never blocks on
// onChange, so it may be called from inside onChange.
type DetectionStrategy interface {
	Name() string
	Start(ctx context.Context, onChange func(context.Context, Detection)) error
	Stop()
}

// SelectStrategy picks the detection mechanism the provider supports:
// an IntersectionObserver when available, otherwise a debounced
// ScrollSource. It returns nil when the provider supports neither or is
// headless.
func SelectStrategy(provider ViewportProvider, target string, debounce time.Duration, clock clockz.Clock) DetectionStrategy {
	if IsHeadless(provider) {
		return nil
	}
	if obs, ok := provider.(IntersectionObserver); ok {
		return NewObserverStrategy(obs, target)
	}
	if src, ok := provider.(ScrollSource); ok {
		return NewPollStrategy(src, provider, target).Debounce(debounce).Clock(clock)
	}
	return nil
}
