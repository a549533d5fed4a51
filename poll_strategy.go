package vista

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// PollStrategy re-evaluates visibility after bursts of scroll signals.
// Signals arriving within the debounce window are coalesced into a single
// evaluation. The current position is evaluated once immediately on Start.
type PollStrategy struct {
	source   ScrollSource
	provider ViewportProvider
	target   string
	debounce time.Duration
	clock    clockz.Clock

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewPollStrategy creates a PollStrategy that reads bounds for target from
// provider whenever source settles.
func NewPollStrategy(source ScrollSource, provider ViewportProvider, target string) *PollStrategy {
	return &PollStrategy{
		source:   source,
		provider: provider,
		target:   target,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		done:     make(chan struct{}),
	}
}

// Debounce sets the quiescence period. Zero evaluates on every signal.
// Must be called before Start().
func (s *PollStrategy) Debounce(d time.Duration) *PollStrategy {
	s.debounce = d
	return s
}

// Clock sets a custom clock for the debounce timer.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before Start().
func (s *PollStrategy) Clock(clock clockz.Clock) *PollStrategy {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Name returns StrategyPoll.
func (*PollStrategy) Name() string { return StrategyPoll }

// Start attaches the scroll handler.
func (s *PollStrategy) Start(ctx context.Context, onChange func(context.Context, Detection)) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	if s.stopped {
		s.mu.Unlock()
		close(s.done)
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	signals, err := s.source.ScrollSignals(ctx)
	if err != nil {
		cancel()
		close(s.done)
		return fmt.Errorf("failed to attach scroll handler: %w", err)
	}

	go s.watch(ctx, signals, onChange)
	return nil
}

// Stop removes the scroll handler.
func (s *PollStrategy) Stop() {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed once the strategy has stopped delivering detections.
func (s *PollStrategy) Done() <-chan struct{} {
	return s.done
}

// evaluate reads the provider and reports one detection.
func (s *PollStrategy) evaluate(ctx context.Context, onChange func(context.Context, Detection)) {
	bounds := s.provider.ElementBounds(s.target)
	height := s.provider.ViewportHeight()
	onChange(ctx, Detection{
		Target:         s.target,
		Bounds:         bounds,
		ViewportHeight: height,
		Intersecting:   CheckVisible(bounds, height),
		Source:         StrategyPoll,
	})
}

// watch coalesces scroll signals and evaluates once they settle.
func (s *PollStrategy) watch(ctx context.Context, signals <-chan struct{}, onChange func(context.Context, Detection)) {
	defer close(s.done)

	if ctx.Err() != nil {
		return
	}
	s.evaluate(ctx, onChange)

	var (
		timer   clockz.Timer
		pending bool
	)

	for {
		if ctx.Err() != nil {
			if timer != nil {
				timer.Stop()
			}
			return
		}

		// Get timer channel or nil if no timer
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case _, ok := <-signals:
			if !ok {
				// Source closed, evaluate any pending signal
				if pending {
					s.evaluate(ctx, onChange)
				}
				return
			}

			if s.debounce <= 0 {
				s.evaluate(ctx, onChange)
				continue
			}
			pending = true

			// Reset or start debounce timer
			if timer == nil {
				timer = s.clock.NewTimer(s.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(s.debounce)
			}

		case <-timerC:
			if pending {
				pending = false
				s.evaluate(ctx, onChange)
			}
		}
	}
}
