package vista

import "context"

// ViewportProvider exposes the host's viewport to a Latch. It is read on
// demand; nothing returned is cached by the latch.
type ViewportProvider interface {
	// ViewportHeight returns the current height of the visible window.
	ViewportHeight() float64

	// ElementBounds returns the current bounds of the named element,
	// relative to the viewport's top edge. Unknown or unlaid-out elements
	// return the zero Rect.
	ElementBounds(target string) Rect
}

// Intersection is one boundary-crossing report from an IntersectionObserver.
type Intersection struct {
	Bounds         Rect
	ViewportHeight float64
	Intersecting   bool
}

// IntersectionObserver is implemented by hosts that can push visibility
// changes for an element without polling. The channel is closed when ctx
// is canceled.
type IntersectionObserver interface {
	ObserveIntersection(ctx context.Context, target string) (<-chan Intersection, error)
}

// ScrollSource is implemented by hosts that expose the ambient scroll
// signal. Each value on the channel is one scroll event. The channel is
// closed when ctx is canceled.
type ScrollSource interface {
	ScrollSignals(ctx context.Context) (<-chan struct{}, error)
}

// Headless is the ViewportProvider for contexts with no viewport at all.
// It reports a zero viewport and zero bounds, so nothing is ever visible,
// and a Latch started against it attaches no detection.
type Headless struct{}

// ViewportHeight always returns 0.
func (Headless) ViewportHeight() float64 { return 0 }

// ElementBounds always returns the zero Rect.
func (Headless) ElementBounds(string) Rect { return Rect{} }

// Headless marks the provider as non-interactive.
func (Headless) Headless() bool { return true }

var _ ViewportProvider = Headless{}

// IsHeadless reports whether detection should be skipped for p: p is nil or
// reports itself as headless.
func IsHeadless(p ViewportProvider) bool {
	if p == nil {
		return true
	}
	h, ok := p.(interface{ Headless() bool })
	return ok && h.Headless()
}
