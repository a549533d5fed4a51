package vista

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
)

// Latch watches one element and notifies exactly once when it first
// becomes visible in the viewport.
type Latch struct {
	target   string
	provider ViewportProvider
	pipeline pipz.Chainable[*Notice]
	debounce time.Duration
	clock    clockz.Clock
	metrics  MetricsProvider
	onStop   func(State)
	forced   DetectionStrategy

	state     atomic.Int32
	lastError atomic.Pointer[error]

	mu       sync.Mutex
	started  bool
	disposed bool
	stopped  bool
	strategy DetectionStrategy
}

// New creates a Latch for the named element.
//
// The provider supplies the viewport and element bounds and, depending on
// what else it implements, the detection mechanism: an
// IntersectionObserver is preferred, a ScrollSource is the fallback. A nil
// or Headless provider never reports visible.
//
// fn is called at most once, when the element is first seen. It may be nil.
//
// Example:
//
//	latch := vista.New("hero", host,
//	    func(ctx context.Context, n vista.Notice) error {
//	        return analytics.Impression(ctx, n.Target)
//	    },
//	    vista.WithRetry(3),
//	).Debounce(100 * time.Millisecond)
func New(target string, provider ViewportProvider, fn Notify, opts ...Option) *Latch {
	return &Latch{
		target:   target,
		provider: provider,
		pipeline: buildPipeline(notifyTerminal(fn), opts),
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the quiescence period used when detection falls back to
// scroll signals. Default: 250ms. Must be called before Start().
func (l *Latch) Debounce(d time.Duration) *Latch {
	l.debounce = d
	return l
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (l *Latch) Clock(clock clockz.Clock) *Latch {
	l.clock = clock
	return l
}

// Strategy forces a detection strategy instead of selecting one from the
// provider's capabilities. Must be called before Start().
func (l *Latch) Strategy(s DetectionStrategy) *Latch {
	l.forced = s
	return l
}

// Metrics sets a metrics provider for observability integration.
// Must be called before Start().
func (l *Latch) Metrics(provider MetricsProvider) *Latch {
	l.metrics = provider
	return l
}

// OnStop sets a callback invoked once when the detection strategy is torn
// down, either after firing or on Dispose. Must be called before Start().
func (l *Latch) OnStop(fn func(State)) *Latch {
	l.onStop = fn
	return l
}

// Target returns the name of the observed element.
func (l *Latch) Target() string {
	return l.target
}

// State returns the current state of the Latch.
func (l *Latch) State() State {
	return State(l.state.Load())
}

// Visible reports whether the latch has fired.
func (l *Latch) Visible() bool {
	return l.State() == StateFired
}

// LastError returns the notification error, or nil.
func (l *Latch) LastError() error {
	ptr := l.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// StrategyName returns the name of the active detection strategy, or ""
// when none is attached or it has been torn down.
func (l *Latch) StrategyName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.strategy == nil || l.stopped {
		return ""
	}
	return l.strategy.Name()
}

// Start selects and attaches the detection strategy.
//
// Start attaches nothing and returns nil when the provider is headless or
// supports no detection mechanism; the latch then stays waiting unless
// Check is called. Start can only be called once.
//
// Canceling ctx detaches the strategy and tears the latch down as Dispose
// would, except that Check keeps working.
func (l *Latch) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return ErrDisposed
	}
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyStarted
	}
	if l.target == "" {
		l.mu.Unlock()
		return ErrNoTarget
	}
	l.started = true

	if l.forced == nil && IsHeadless(l.provider) {
		l.mu.Unlock()
		capitan.Emit(ctx, LatchSkipped,
			KeyTarget.Field(l.target),
			KeyReason.Field("headless"),
		)
		return nil
	}

	strategy := l.forced
	if strategy == nil {
		strategy = SelectStrategy(l.provider, l.target, l.debounce, l.clock)
	}
	if strategy == nil {
		l.mu.Unlock()
		capitan.Emit(ctx, LatchSkipped,
			KeyTarget.Field(l.target),
			KeyReason.Field("no detection capability"),
		)
		return nil
	}
	l.strategy = strategy
	l.mu.Unlock()

	capitan.Emit(ctx, StrategySelected,
		KeyTarget.Field(l.target),
		KeyStrategy.Field(strategy.Name()),
	)

	if err := strategy.Start(ctx, l.handle); err != nil {
		l.mu.Lock()
		l.strategy = nil
		l.mu.Unlock()
		return fmt.Errorf("failed to start %s detection: %w", strategy.Name(), err)
	}

	capitan.Emit(ctx, LatchStarted,
		KeyTarget.Field(l.target),
		KeyStrategy.Field(strategy.Name()),
		KeyDebounce.Field(l.debounce),
	)

	// Strategies that report completion are torn down when they finish,
	// which covers ctx being canceled.
	if d, ok := strategy.(interface{ Done() <-chan struct{} }); ok {
		go func() {
			<-d.Done()
			l.teardown(context.WithoutCancel(ctx))
		}()
	}

	// Dispose may have run while the strategy was attaching. Its teardown
	// then reached Stop before the strategy was attached.
	l.mu.Lock()
	disposed := l.disposed
	l.mu.Unlock()
	if disposed {
		strategy.Stop()
		l.teardown(ctx)
	}

	return nil
}

// Check performs one detection attempt against the provider's current
// viewport and bounds, firing the latch if the element is visible. It
// reports whether the element is visible now. Check works without Start.
func (l *Latch) Check(ctx context.Context) bool {
	if IsHeadless(l.provider) {
		return false
	}
	bounds := l.provider.ElementBounds(l.target)
	height := l.provider.ViewportHeight()
	visible := CheckVisible(bounds, height)

	l.handle(ctx, Detection{
		Target:         l.target,
		Bounds:         bounds,
		ViewportHeight: height,
		Intersecting:   visible,
		Source:         StrategyCheck,
	})
	return visible
}

// Dispose detaches the active detection strategy. Once Dispose returns no
// notification will begin. Dispose is idempotent.
func (l *Latch) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	l.mu.Unlock()

	l.teardown(context.Background())
}

// handle is the single entry point for detections from every source.
func (l *Latch) handle(ctx context.Context, d Detection) {
	l.mu.Lock()
	done := l.disposed || l.State() == StateFired
	l.mu.Unlock()
	if done {
		return
	}

	if l.metrics != nil {
		l.metrics.OnDetection(d.Intersecting)
	}
	capitan.Emit(ctx, LatchDetection,
		KeyTarget.Field(l.target),
		KeyStrategy.Field(d.Source),
		KeyBounds.Field(d.Bounds.String()),
		KeyViewportHeight.Field(strconv.FormatFloat(d.ViewportHeight, 'f', -1, 64)),
		KeyVisible.Field(strconv.FormatBool(d.Intersecting)),
	)

	if !d.Intersecting {
		return
	}
	l.fire(ctx, d)
}

// fire transitions waiting to fired, delivers the notice, then tears the
// strategy down. Only the first caller wins.
func (l *Latch) fire(ctx context.Context, d Detection) {
	l.mu.Lock()
	if l.disposed || l.State() == StateFired {
		l.mu.Unlock()
		return
	}
	l.state.Store(int32(StateFired))
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.OnStateChange(StateWaiting, StateFired)
	}

	notice := &Notice{
		Target:         l.target,
		Bounds:         d.Bounds,
		ViewportHeight: d.ViewportHeight,
		Strategy:       d.Source,
		FiredAt:        l.clock.Now(),
	}
	capitan.Emit(ctx, LatchFired,
		KeyTarget.Field(l.target),
		KeyStrategy.Field(d.Source),
		KeyBounds.Field(d.Bounds.String()),
	)

	start := l.clock.Now()
	if _, err := l.pipeline.Process(ctx, notice); err != nil {
		e := err
		l.lastError.Store(&e)
		capitan.Emit(ctx, LatchNotifyFailed,
			KeyTarget.Field(l.target),
			KeyError.Field(err.Error()),
		)
		if l.metrics != nil {
			l.metrics.OnNotifyFailure(l.clock.Since(start))
		}
	} else if l.metrics != nil {
		l.metrics.OnNotifySuccess(l.clock.Since(start))
	}

	l.teardown(ctx)
}

// teardown stops the active strategy exactly once.
func (l *Latch) teardown(ctx context.Context) {
	l.mu.Lock()
	if l.stopped || l.strategy == nil {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	strategy := l.strategy
	l.mu.Unlock()

	strategy.Stop()

	finalState := l.State()
	capitan.Emit(ctx, LatchStopped,
		KeyTarget.Field(l.target),
		KeyStrategy.Field(strategy.Name()),
		KeyState.Field(finalState.String()),
	)
	if l.onStop != nil {
		l.onStop(finalState)
	}
}
