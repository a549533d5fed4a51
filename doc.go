// Package vista reports, exactly once, when an element first scrolls into
// the viewport.
//
// The core type is Latch, which watches one element through a host's
// detection mechanism and invokes a notification callback the first time
// the element is visible. After that the latch is fired for good and the
// mechanism is detached.
//
// # Visibility
//
// An element is visible when its bounds overlap the viewport vertically:
//
//	bottom >= 0 && top-viewportHeight <= 0
//
// An element at the origin with no extent has not been laid out and is
// never visible. See CheckVisible.
//
// # Hosts
//
// The host environment is injected through ViewportProvider. What else the
// provider implements decides how detection happens:
//
//   - IntersectionObserver: preferred, push-based boundary reports
//   - ScrollSource: fallback, scroll signals debounced by 250ms and then
//     re-evaluated with CheckVisible
//
// A nil or Headless provider attaches nothing and never reports visible.
// MemoryHost implements every capability and is driven by calling code.
// A file-backed host lives in pkg/layout.
//
// # State Machine
//
// Latch has two states:
//
//   - Waiting: initial state, element not seen yet
//   - Fired: element was seen and the callback invoked; terminal
//
// # Example
//
//	host := vista.NewMemoryHost(800)
//
//	latch := vista.New("hero", host,
//	    func(ctx context.Context, n vista.Notice) error {
//	        log.Printf("%s visible via %s", n.Target, n.Strategy)
//	        return nil
//	    },
//	    vista.WithTimeout(time.Second),
//	)
//	defer latch.Dispose()
//
//	if err := latch.Start(ctx); err != nil {
//	    log.Printf("detection unavailable: %v", err)
//	}
//
//	host.SetBounds("hero", vista.Rect{Top: 100, Bottom: 200})
//
// Signals for every lifecycle step are emitted through capitan.
package vista
