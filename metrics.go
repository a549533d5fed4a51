package vista

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key latch events.
type MetricsProvider interface {
	// OnStateChange is called when the latch transitions between states.
	OnStateChange(from, to State)

	// OnDetection is called for every detection attempt with its outcome.
	OnDetection(visible bool)

	// OnNotifySuccess is called when the notification pipeline succeeds.
	OnNotifySuccess(duration time.Duration)

	// OnNotifyFailure is called when the notification pipeline fails.
	OnNotifyFailure(duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)        {}
func (NoOpMetricsProvider) OnDetection(_ bool)              {}
func (NoOpMetricsProvider) OnNotifySuccess(_ time.Duration) {}
func (NoOpMetricsProvider) OnNotifyFailure(_ time.Duration) {}
