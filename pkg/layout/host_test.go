package layout

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/vista"
)

func TestHost_ReadsLayout(t *testing.T) {
	path := writeFile(t, "layout.yaml", validYAML)
	host := New(path)

	if host.ViewportHeight() != 0 || !host.ElementBounds("hero").IsZero() {
		t.Error("expected empty geometry before Load")
	}
	if err := host.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if host.ViewportHeight() != 800 {
		t.Errorf("expected viewport 800, got %v", host.ViewportHeight())
	}
	if host.ElementBounds("hero") != (vista.Rect{Top: 100, Bottom: 200}) {
		t.Errorf("unexpected hero bounds %v", host.ElementBounds("hero"))
	}
	if host.Current() == nil || host.Path() != path {
		t.Error("expected current layout and path")
	}
}

func TestHost_LoadInvalid(t *testing.T) {
	path := writeFile(t, "layout.yaml", "viewport_height: 800")
	if err := New(path).Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestHost_ScrollSignals_InitialAndOnWrite(t *testing.T) {
	path := writeFile(t, "layout.yaml", validYAML)
	host := New(path)
	if err := host.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	signals, err := host.ScrollSignals(ctx)
	if err != nil {
		t.Fatalf("ScrollSignals() error = %v", err)
	}

	select {
	case <-signals:
	case <-ctx.Done():
		t.Fatal("timeout waiting for initial signal")
	}

	moved := "viewport_height: 800\nelements:\n  hero: {top: 5000, bottom: 5100}\n"
	if err := os.WriteFile(path, []byte(moved), 0o600); err != nil {
		t.Fatalf("failed to update file: %v", err)
	}

	select {
	case <-signals:
	case <-ctx.Done():
		t.Fatal("timeout waiting for scroll signal")
	}
	if host.ElementBounds("hero").Top != 5000 {
		t.Errorf("expected reloaded bounds, got %v", host.ElementBounds("hero"))
	}
}

func TestHost_ScrollSignals_RejectsInvalidWrite(t *testing.T) {
	path := writeFile(t, "layout.yaml", validYAML)
	host := New(path)
	if err := host.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	signals, err := host.ScrollSignals(ctx)
	if err != nil {
		t.Fatalf("ScrollSignals() error = %v", err)
	}
	<-signals

	if err := os.WriteFile(path, []byte("elements: ["), 0o600); err != nil {
		t.Fatalf("failed to update file: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	if host.ElementBounds("hero") != (vista.Rect{Top: 100, Bottom: 200}) {
		t.Errorf("expected previous layout to be kept, got %v", host.ElementBounds("hero"))
	}
}

func TestHost_ScrollSignals_MissingFile(t *testing.T) {
	host := New(filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := host.ScrollSignals(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHost_ScrollSignals_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "layout.yaml", validYAML)
	host := New(path)

	ctx, cancel := context.WithCancel(context.Background())
	signals, err := host.ScrollSignals(ctx)
	if err != nil {
		t.Fatalf("ScrollSignals() error = %v", err)
	}
	<-signals
	cancel()

	select {
	case _, ok := <-signals:
		if ok {
			t.Error("expected channel to close after context cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel to close")
	}
}

func TestHost_DrivesLatch(t *testing.T) {
	path := writeFile(t, "layout.yaml", "viewport_height: 800\nelements:\n  hero: {top: 900, bottom: 950}\n")
	host := New(path)
	if err := host.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var calls atomic.Int32
	latch := vista.New("hero", host, func(context.Context, vista.Notice) error {
		calls.Add(1)
		return nil
	}).Debounce(10 * time.Millisecond)
	defer latch.Dispose()

	if err := latch.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if latch.StrategyName() != vista.StrategyPoll {
		t.Fatalf("expected poll strategy, got %q", latch.StrategyName())
	}

	time.Sleep(50 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("expected no notification yet, got %d", calls.Load())
	}

	scrolled := "viewport_height: 800\nelements:\n  hero: {top: 100, bottom: 200}\n"
	if err := os.WriteFile(path, []byte(scrolled), 0o600); err != nil {
		t.Fatalf("failed to update file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && !latch.Visible() {
		time.Sleep(10 * time.Millisecond)
	}
	if !latch.Visible() {
		t.Fatal("expected latch to fire after layout write")
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 notification, got %d", calls.Load())
	}
}
