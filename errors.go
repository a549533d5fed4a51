package vista

import "errors"

var (
	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = errors.New("vista: already started")

	// ErrDisposed is returned when Start is called on a disposed latch.
	ErrDisposed = errors.New("vista: latch disposed")

	// ErrNoTarget is returned when a latch has no target element name.
	ErrNoTarget = errors.New("vista: no target")
)
