package engine

import (
	"sync"
	"time"

	"github.com/matzehuels/cardwall/pkg/layout"
	"github.com/matzehuels/cardwall/pkg/observability"
)

// DefaultDebounce is the default trailing-debounce window for resize signals.
const DefaultDebounce = 100 * time.Millisecond

// SizeObserver is the platform size-observation primitive for a container.
// Hosts without a native observation mechanism can use [NewPollingObserver]
// as a coarser fallback, or feed sizes directly via [ResizeWatcher.Signal].
type SizeObserver interface {
	// Observe starts delivering size notifications to fn and returns a stop
	// function that releases the subscription.
	Observe(fn func(layout.Viewport)) (stop func(), err error)
}

// ObserverFunc adapts a subscription function to the SizeObserver interface.
type ObserverFunc func(fn func(layout.Viewport)) (func(), error)

// Observe implements SizeObserver.
func (f ObserverFunc) Observe(fn func(layout.Viewport)) (func(), error) { return f(fn) }

// =============================================================================
// ResizeWatcher - Debounced Resize Notifications
// =============================================================================

// ResizeWatcher collapses bursts of size notifications into a single callback
// using a trailing debounce: the callback fires once the debounce window has
// elapsed after the last signal. A signal reporting the same size as the one
// last delivered is suppressed entirely.
type ResizeWatcher struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(layout.Viewport)
	timer   *time.Timer
	pending layout.Viewport

	applied    layout.Viewport
	hasApplied bool

	stopObserve func()
	closed      bool
}

// NewResizeWatcher creates a watcher delivering debounced sizes to fn.
// A non-positive delay falls back to [DefaultDebounce].
func NewResizeWatcher(delay time.Duration, fn func(layout.Viewport)) *ResizeWatcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &ResizeWatcher{delay: delay, fn: fn}
}

// Watch subscribes the watcher to a size observer. At most one subscription
// is held; watching again replaces the previous one.
func (w *ResizeWatcher) Watch(obs SizeObserver) error {
	stop, err := obs.Observe(w.Signal)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		stop()
		return nil
	}
	prev := w.stopObserve
	w.stopObserve = stop
	w.mu.Unlock()

	if prev != nil {
		prev()
	}
	return nil
}

// Signal reports a newly measured container size. Safe for concurrent use.
func (w *ResizeWatcher) Signal(v layout.Viewport) {
	observability.Layout().OnResizeSignal(v.Width, v.Height)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	// No-op guard: nothing changed since the last delivered size.
	if w.hasApplied && v == w.applied && w.timer == nil {
		return
	}

	w.pending = v
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

// fire delivers the pending size after the debounce window elapses.
func (w *ResizeWatcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	v := w.pending
	if w.hasApplied && v == w.applied {
		w.mu.Unlock()
		return
	}
	w.applied = v
	w.hasApplied = true
	fn := w.fn
	w.mu.Unlock()

	observability.Layout().OnResizeDebounced(v.Width, v.Height)
	if fn != nil {
		fn(v)
	}
}

// LastApplied returns the last size that was delivered to the callback.
// The second return is false before the first delivery.
func (w *ResizeWatcher) LastApplied() (layout.Viewport, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.applied, w.hasApplied
}

// Close stops the timer, releases the subscription, and drops any pending
// callback. The watcher cannot be reused afterwards.
func (w *ResizeWatcher) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	stop := w.stopObserve
	w.stopObserve = nil
	w.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// =============================================================================
// PollingObserver - Fallback Size Observation
// =============================================================================

// PollingObserver is a coarse SizeObserver fallback: it polls a measurement
// function at a fixed interval and notifies on every change. Intended for
// hosts without a native resize notification primitive.
type PollingObserver struct {
	measure  func() layout.Viewport
	interval time.Duration
}

// NewPollingObserver creates an observer polling measure every interval.
// A non-positive interval falls back to one second.
func NewPollingObserver(measure func() layout.Viewport, interval time.Duration) *PollingObserver {
	if interval <= 0 {
		interval = time.Second
	}
	return &PollingObserver{measure: measure, interval: interval}
}

// Observe implements SizeObserver. The polling goroutine stops when the
// returned stop function is called.
func (p *PollingObserver) Observe(fn func(layout.Viewport)) (func(), error) {
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		last := p.measure()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				v := p.measure()
				if v != last {
					last = v
					fn(v)
				}
			}
		}
	}()

	return func() { once.Do(func() { close(stopCh) }) }, nil
}
