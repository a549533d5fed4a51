package vista

import (
	"context"
	"time"
)

// Notice carries the detection that fired a Latch through the notification
// pipeline.
type Notice struct {
	// Target is the name of the element that became visible.
	Target string

	// Bounds is the element's bounds at the moment it was seen.
	Bounds Rect

	// ViewportHeight is the viewport height at the moment it was seen.
	ViewportHeight float64

	// Strategy names the detection mechanism that reported visibility.
	Strategy string

	// FiredAt is when the latch transitioned to fired.
	FiredAt time.Time
}

// Notify is the caller's notification callback. It runs at most once per
// Latch. A returned error is recorded but never re-arms the latch.
type Notify func(ctx context.Context, n Notice) error
