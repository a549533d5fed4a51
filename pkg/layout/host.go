package layout

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/vista"
)

// Host serves viewport and element bounds from a layout file and treats
// each write to the file as a scroll signal.
type Host struct {
	path  string
	codec Codec

	mu      sync.RWMutex
	current *Layout
}

// New creates a Host for the layout file at path. Call Load before use.
func New(path string) *Host {
	return &Host{path: path, codec: CodecFor(path)}
}

// Codec overrides the codec chosen from the file extension.
func (h *Host) Codec(c Codec) *Host {
	h.codec = c
	return h
}

// Path returns the layout file path.
func (h *Host) Path() string {
	return h.path
}

// Load reads the layout file and makes it current.
func (h *Host) Load() error {
	l, err := h.read()
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.current = l
	h.mu.Unlock()
	return nil
}

// Current returns the active layout, or nil before a successful Load.
func (h *Host) Current() *Layout {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// ViewportHeight returns the active layout's viewport height.
func (h *Host) ViewportHeight() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return 0
	}
	return h.current.ViewportHeight
}

// ElementBounds returns target's bounds in the active layout.
func (h *Host) ElementBounds(target string) vista.Rect {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return vista.Rect{}
	}
	return h.current.Elements[target]
}

// ScrollSignals watches the layout file. One signal is emitted immediately,
// then one after each write that yields a valid layout. Invalid writes are
// rejected and the previous layout is kept.
func (h *Host) ScrollSignals(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(h.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch layout %s: %w", h.path, err)
	}

	out := make(chan struct{})

	go func() {
		defer close(out)
		defer watcher.Close()

		select {
		case out <- struct{}{}:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// Only reload on write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if !h.reload(ctx) {
					continue
				}

				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
			}
		}
	}()

	return out, nil
}

// reload swaps in the file's layout if it is valid.
func (h *Host) reload(ctx context.Context) bool {
	l, err := h.read()
	if err != nil {
		capitan.Emit(ctx, LayoutRejected,
			KeyPath.Field(h.path),
			KeyError.Field(err.Error()),
		)
		return false
	}

	h.mu.Lock()
	h.current = l
	h.mu.Unlock()

	capitan.Emit(ctx, LayoutReloaded,
		KeyPath.Field(h.path),
		KeyElements.Field(len(l.Elements)),
	)
	return true
}

func (h *Host) read() (*Layout, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data, h.codec)
}

var (
	_ vista.ViewportProvider = (*Host)(nil)
	_ vista.ScrollSource     = (*Host)(nil)
)
