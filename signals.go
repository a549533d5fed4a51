package vista

import "github.com/zoobzio/capitan"

// Latch lifecycle signals.
var (
	// LatchStarted is emitted when a Latch attaches a detection strategy.
	LatchStarted = capitan.NewSignal(
		"vista.latch.started",
		"Latch detection started",
	)

	// LatchSkipped is emitted when Start attaches nothing, either because
	// the host is headless or because it offers no detection capability.
	LatchSkipped = capitan.NewSignal(
		"vista.latch.skipped",
		"Latch detection skipped",
	)

	// LatchStopped is emitted once when the active strategy is torn down.
	LatchStopped = capitan.NewSignal(
		"vista.latch.stopped",
		"Latch detection stopped",
	)

	// StrategySelected is emitted when a detection strategy is chosen.
	StrategySelected = capitan.NewSignal(
		"vista.strategy.selected",
		"Detection strategy selected",
	)
)

// Detection signals.
var (
	// LatchDetection is emitted for every detection attempt.
	LatchDetection = capitan.NewSignal(
		"vista.latch.detection",
		"Detection attempt evaluated",
	)

	// LatchFired is emitted when the latch transitions to fired.
	LatchFired = capitan.NewSignal(
		"vista.latch.fired",
		"Target became visible",
	)

	// LatchNotifyFailed is emitted when the notification pipeline fails.
	LatchNotifyFailed = capitan.NewSignal(
		"vista.latch.notify.failed",
		"Notification callback failed",
	)
)
