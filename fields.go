package vista

import "github.com/zoobzio/capitan"

// Field keys for Latch events.
var (
	// KeyTarget is the name of the observed element.
	KeyTarget = capitan.NewStringKey("target")

	// KeyStrategy is the name of the detection strategy.
	KeyStrategy = capitan.NewStringKey("strategy")

	// KeyState is the current state of the Latch.
	KeyState = capitan.NewStringKey("state")

	// KeyReason explains why detection was skipped.
	KeyReason = capitan.NewStringKey("reason")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyBounds is the element's bounds at detection time.
	KeyBounds = capitan.NewStringKey("bounds")

	// KeyViewportHeight is the viewport height at detection time.
	KeyViewportHeight = capitan.NewStringKey("viewport_height")

	// KeyVisible is the outcome of a detection attempt.
	KeyVisible = capitan.NewStringKey("visible")
)
