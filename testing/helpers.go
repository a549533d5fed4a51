// Package testing provides test utilities and helpers for vista latches.
package testing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/vista"
)

// Recorder counts and keeps every notice delivered to it.
type Recorder struct {
	count   atomic.Int32
	mu      sync.Mutex
	notices []vista.Notice
}

// Notify implements vista.Notify.
func (r *Recorder) Notify(_ context.Context, n vista.Notice) error {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
	r.count.Add(1)
	return nil
}

// Count returns the number of notices received.
func (r *Recorder) Count() int {
	return int(r.count.Load())
}

// Notices returns a copy of the notices received.
func (r *Recorder) Notices() []vista.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]vista.Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}

// WaitForState waits until the latch reaches the expected state or timeout occurs.
func WaitForState(t *testing.T, l *vista.Latch, expected vista.State, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return l.State() == expected
	})
}

// RequireState fails the test immediately if the latch is not in the expected state.
func RequireState(t *testing.T, l *vista.Latch, expected vista.State) {
	t.Helper()
	if got := l.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireCount fails the test if the recorder did not receive exactly n notices.
func RequireCount(t *testing.T, r *Recorder, n int) {
	t.Helper()
	if got := r.Count(); got != n {
		t.Fatalf("expected %d notices, got %d", n, got)
	}
}

// NewTestLatch creates a latch for target on host with a Recorder as its
// callback and a zero debounce. The latch is disposed when the test ends.
func NewTestLatch(t *testing.T, target string, host vista.ViewportProvider) (*vista.Latch, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	l := vista.New(target, host, rec.Notify).Debounce(0)
	t.Cleanup(l.Dispose)
	return l, rec
}
