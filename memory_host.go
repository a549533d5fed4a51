package vista

import (
	"context"
	"sync"
)

// MemoryHost is an in-process host whose viewport, element bounds and
// scroll signals are driven by calling code. It implements every host
// capability and is useful for testing and for hosts that already track
// layout themselves.
type MemoryHost struct {
	mu        sync.Mutex
	height    float64
	bounds    map[string]Rect
	scrolls   map[chan struct{}]struct{}
	observers map[string]map[*memoryObserver]struct{}
}

type memoryObserver struct {
	ch           chan Intersection
	intersecting bool
}

// memoryBuffer bounds undelivered signals per subscriber.
const memoryBuffer = 64

// NewMemoryHost creates a MemoryHost with the given viewport height.
func NewMemoryHost(viewportHeight float64) *MemoryHost {
	return &MemoryHost{
		height:    viewportHeight,
		bounds:    make(map[string]Rect),
		scrolls:   make(map[chan struct{}]struct{}),
		observers: make(map[string]map[*memoryObserver]struct{}),
	}
}

// ViewportHeight returns the current viewport height.
func (h *MemoryHost) ViewportHeight() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.height
}

// ElementBounds returns the bounds last set for target.
func (h *MemoryHost) ElementBounds(target string) Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds[target]
}

// SetViewportHeight resizes the viewport and notifies observers whose
// intersection changed.
func (h *MemoryHost) SetViewportHeight(height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.height = height
	for target := range h.observers {
		h.notifyLocked(target)
	}
}

// SetBounds moves target and notifies its observers if its intersection
// changed. It does not emit a scroll signal; call Scroll for that.
func (h *MemoryHost) SetBounds(target string, r Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bounds[target] = r
	h.notifyLocked(target)
}

// Scroll emits one scroll signal to every subscriber. Signals are dropped
// for subscribers that have memoryBuffer signals pending.
func (h *MemoryHost) Scroll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.scrolls {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ScrollSignals subscribes to scroll signals until ctx is canceled.
func (h *MemoryHost) ScrollSignals(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, memoryBuffer)

	h.mu.Lock()
	h.scrolls[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.scrolls, ch)
		close(ch)
		h.mu.Unlock()
	}()

	return ch, nil
}

// ObserveIntersection reports the current intersection of target
// immediately, then every time it changes, until ctx is canceled.
func (h *MemoryHost) ObserveIntersection(ctx context.Context, target string) (<-chan Intersection, error) {
	obs := &memoryObserver{ch: make(chan Intersection, memoryBuffer)}

	h.mu.Lock()
	r := h.bounds[target]
	obs.intersecting = CheckVisible(r, h.height)
	obs.ch <- Intersection{Bounds: r, ViewportHeight: h.height, Intersecting: obs.intersecting}
	if h.observers[target] == nil {
		h.observers[target] = make(map[*memoryObserver]struct{})
	}
	h.observers[target][obs] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.observers[target], obs)
		if len(h.observers[target]) == 0 {
			delete(h.observers, target)
		}
		close(obs.ch)
		h.mu.Unlock()
	}()

	return obs.ch, nil
}

// Subscribers returns the number of attached scroll handlers and
// intersection observers.
func (h *MemoryHost) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.scrolls)
	for _, set := range h.observers {
		n += len(set)
	}
	return n
}

// ScrollOnly returns a view of the host without intersection observation,
// so strategy selection falls back to polling.
func (h *MemoryHost) ScrollOnly() ViewportProvider {
	return scrollOnlyHost{h}
}

// notifyLocked pushes a report to observers of target whose intersection
// changed. The caller holds h.mu.
func (h *MemoryHost) notifyLocked(target string) {
	set := h.observers[target]
	if len(set) == 0 {
		return
	}
	r := h.bounds[target]
	visible := CheckVisible(r, h.height)
	for obs := range set {
		if obs.intersecting == visible {
			continue
		}
		obs.intersecting = visible
		select {
		case obs.ch <- Intersection{Bounds: r, ViewportHeight: h.height, Intersecting: visible}:
		default:
		}
	}
}

type scrollOnlyHost struct {
	h *MemoryHost
}

func (s scrollOnlyHost) ViewportHeight() float64          { return s.h.ViewportHeight() }
func (s scrollOnlyHost) ElementBounds(target string) Rect { return s.h.ElementBounds(target) }
func (s scrollOnlyHost) ScrollSignals(ctx context.Context) (<-chan struct{}, error) {
	return s.h.ScrollSignals(ctx)
}

var (
	_ ViewportProvider     = (*MemoryHost)(nil)
	_ IntersectionObserver = (*MemoryHost)(nil)
	_ ScrollSource         = (*MemoryHost)(nil)
	_ ScrollSource         = scrollOnlyHost{}
)
