package vista

import (
	"context"
	"fmt"
	"sync"
)

// ObserverStrategy forwards boundary-crossing reports pushed by an
// IntersectionObserver. Stopping it disconnects the observer.
type ObserverStrategy struct {
	observer IntersectionObserver
	target   string

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewObserverStrategy creates an ObserverStrategy for target.
func NewObserverStrategy(observer IntersectionObserver, target string) *ObserverStrategy {
	return &ObserverStrategy{
		observer: observer,
		target:   target,
		done:     make(chan struct{}),
	}
}

// Name returns StrategyObserver.
func (*ObserverStrategy) Name() string { return StrategyObserver }

// Start connects the observer and forwards every report to onChange.
func (s *ObserverStrategy) Start(ctx context.Context, onChange func(context.Context, Detection)) error {
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

	reports, err := s.observer.ObserveIntersection(ctx, s.target)
	if err != nil {
		cancel()
		close(s.done)
		return fmt.Errorf("failed to observe %s: %w", s.target, err)
	}

	go func() {
		defer close(s.done)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-reports:
				if !ok {
					return
				}
				onChange(ctx, Detection{
					Target:         s.target,
					Bounds:         r.Bounds,
					ViewportHeight: r.ViewportHeight,
					Intersecting:   r.Intersecting,
					Source:         StrategyObserver,
				})
			}
		}
	}()

	return nil
}

// Stop disconnects the observer.
func (s *ObserverStrategy) Stop() {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed once the strategy has stopped delivering detections.
func (s *ObserverStrategy) Done() <-chan struct{} {
	return s.done
}
