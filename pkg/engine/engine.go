package engine

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardwall/pkg/errors"
	"github.com/matzehuels/cardwall/pkg/layout"
	"github.com/matzehuels/cardwall/pkg/observability"
)

// =============================================================================
// Config - Collaborator Injection
// =============================================================================

// Config carries the engine's collaborators. They are passed explicitly at
// construction rather than resolved from ambient global state.
type Config struct {
	// Measure returns the current container size. Required.
	Measure func() layout.Viewport

	// Observer is an optional resize-notification subscription. Without one,
	// resize handling relies on [Engine.NotifyResize] being called by the
	// host, or on no resizes at all.
	Observer SizeObserver

	// Options is the initial layout configuration. Zero value gets defaults.
	Options layout.Options

	// Debounce is the resize debounce window. Zero means [DefaultDebounce].
	Debounce time.Duration

	// Logger receives structured engine logs. Nil discards them.
	Logger *log.Logger
}

// =============================================================================
// Engine - Orchestrator State Machine
// =============================================================================

// Engine owns the recompute loop for one card container. All exported
// methods are safe for concurrent use; compute passes are strictly
// serialized, and external readers only ever see the last completed result.
type Engine struct {
	mu sync.Mutex

	opts    layout.Options
	handles []Handle
	byID    map[string]int // card id → index into handles

	result    *layout.Result
	computing bool
	pending   bool
	destroyed bool

	listeners map[int]func(layout.Result)
	nextID    int

	watcher *ResizeWatcher
	measure func() layout.Viewport
	logger  *log.Logger
}

// New creates an engine from the given configuration and subscribes to the
// resize observer when one is provided. No pass runs until the first trigger.
func New(cfg Config) (*Engine, error) {
	if cfg.Measure == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "engine requires a Measure function")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	opts := cfg.Options
	if opts == (layout.Options{}) {
		opts = layout.DefaultOptions()
	}

	e := &Engine{
		opts:      opts.Clamped(),
		byID:      make(map[string]int),
		listeners: make(map[int]func(layout.Result)),
		measure:   cfg.Measure,
		logger:    logger,
	}
	e.watcher = NewResizeWatcher(cfg.Debounce, func(v layout.Viewport) {
		e.logger.Debug("resize debounced", "width", v.Width, "height", v.Height)
		e.trigger("resize")
	})

	if cfg.Observer != nil {
		if err := e.watcher.Watch(cfg.Observer); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "subscribe to size observer")
		}
	}
	return e, nil
}

// =============================================================================
// Card Set Mutations
// =============================================================================

// AddCard appends a card handle to the end of the packing order and triggers
// a recompute. The card's id must be unique within the engine.
func (e *Engine) AddCard(h Handle) error {
	id := h.ID()
	if err := errors.ValidateCardID(id); err != nil {
		return err
	}

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return errors.New(errors.ErrCodeUnsupported, "engine is destroyed")
	}
	if _, exists := e.byID[id]; exists {
		e.mu.Unlock()
		return errors.New(errors.ErrCodeInvalidCard, "duplicate card id %q", id)
	}
	e.byID[id] = len(e.handles)
	e.handles = append(e.handles, h)
	e.mu.Unlock()

	e.trigger("card added")
	return nil
}

// RemoveCard removes a card by id and triggers a recompute. The remaining
// insertion order is preserved.
func (e *Engine) RemoveCard(id string) error {
	e.mu.Lock()
	idx, ok := e.byID[id]
	if !ok {
		e.mu.Unlock()
		return errors.New(errors.ErrCodeCardNotFound, "no card with id %q", id)
	}
	e.handles = append(e.handles[:idx], e.handles[idx+1:]...)
	delete(e.byID, id)
	for i := idx; i < len(e.handles); i++ {
		e.byID[e.handles[i].ID()] = i
	}
	e.mu.Unlock()

	e.trigger("card removed")
	return nil
}

// Clear removes all cards and triggers a recompute.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.handles = nil
	e.byID = make(map[string]int)
	e.mu.Unlock()

	e.trigger("cards cleared")
}

// CardCount returns the number of cards currently managed.
func (e *Engine) CardCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handles)
}

// =============================================================================
// Options and Triggers
// =============================================================================

// Options returns a copy of the current layout options. Partial updates are
// read-modify-write: take the copy, change fields, pass it to SetOptions.
func (e *Engine) Options() layout.Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetOptions replaces the layout options (clamping invalid geometry) and
// triggers a recompute.
func (e *Engine) SetOptions(opts layout.Options) {
	e.mu.Lock()
	e.opts = opts.Clamped()
	e.mu.Unlock()

	e.trigger("options changed")
}

// Recompute explicitly triggers a full layout pass.
func (e *Engine) Recompute() {
	e.trigger("explicit refresh")
}

// NotifyResize feeds a raw size notification into the debounced resize path.
// Hosts with a native SizeObserver do not need to call this.
func (e *Engine) NotifyResize(v layout.Viewport) {
	e.watcher.Signal(v)
}

// =============================================================================
// Results and Listeners
// =============================================================================

// Result returns the last completed layout. The second return is false
// before the first successful pass.
func (e *Engine) Result() (layout.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.result == nil {
		return layout.Result{}, false
	}
	return *e.result, true
}

// OnLayoutComputed registers a listener invoked with every completed result.
// The returned function unregisters the listener.
func (e *Engine) OnLayoutComputed(fn func(layout.Result)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// Destroy releases the resize subscription and clears internal state.
// Triggers arriving after Destroy are ignored.
func (e *Engine) Destroy() {
	e.watcher.Close()

	e.mu.Lock()
	e.destroyed = true
	e.pending = false
	e.handles = nil
	e.byID = make(map[string]int)
	e.listeners = make(map[int]func(layout.Result))
	e.result = nil
	e.mu.Unlock()
}

// =============================================================================
// Single-Flight Recompute Loop
// =============================================================================

// trigger requests a recompute. If a pass is already in flight the request
// collapses into the depth-1 pending slot: the pass re-runs once after the
// current one finishes, no matter how many triggers arrived meanwhile.
func (e *Engine) trigger(reason string) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	if e.computing {
		e.pending = true
		e.mu.Unlock()
		return
	}
	e.computing = true
	e.mu.Unlock()

	for {
		e.runPass(reason)

		e.mu.Lock()
		if e.pending && !e.destroyed {
			e.pending = false
			e.mu.Unlock()
			reason = "coalesced"
			continue
		}
		e.computing = false
		e.mu.Unlock()
		return
	}
}

// runPass executes one full compute-and-apply pass. On any failure the
// previous completed result is retained and the error is logged; the visible
// layout is never left half-applied.
func (e *Engine) runPass(reason string) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.New(errors.ErrCodeInternal, "layout pass panicked: %v", r)
			e.logger.Error("layout pass failed", "reason", reason, "err", err)
		}
	}()

	e.mu.Lock()
	opts := e.opts
	handles := make([]Handle, len(e.handles))
	copy(handles, e.handles)
	e.mu.Unlock()

	ids := make([]string, len(handles))
	heights := make(map[string]float64, len(handles))
	for i, h := range handles {
		ids[i] = h.ID()
		if mh, ok := h.MeasuredHeight(); ok {
			heights[ids[i]] = mh
		}
	}
	lookup := func(id string) (float64, bool) {
		h, ok := heights[id]
		return h, ok
	}

	vp := e.measure()

	start := time.Now()
	observability.Layout().OnComputeStart(opts.Mode, len(ids))

	res, err := layout.Compute(ids, vp, opts, lookup)
	observability.Layout().OnComputeComplete(opts.Mode, time.Since(start), err)
	if err != nil {
		if errors.Is(err, errors.ErrCodeZeroViewport) {
			e.logger.Debug("layout deferred", "reason", reason, "err", err)
		} else {
			e.logger.Error("layout failed", "reason", reason, "err", err)
		}
		return
	}

	applied, skipped := Apply(&res, handles)
	if skipped > 0 {
		e.logger.Debug("skipped stale handles", "skipped", skipped)
	}

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.result = &res
	listeners := make([]func(layout.Result), 0, len(e.listeners))
	for _, fn := range e.listeners {
		listeners = append(listeners, fn)
	}
	e.mu.Unlock()

	e.logger.Debug(fmt.Sprintf("layout computed (%s)", reason),
		"cards", applied,
		"columns", res.Columns,
		"direction", res.Direction,
		"took", time.Since(start).Round(time.Microsecond),
	)

	for _, fn := range listeners {
		fn(res)
	}
}
