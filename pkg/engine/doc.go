// Package engine drives reactive layout recomputation for a card container.
//
// The engine wraps the pure algorithms in pkg/layout with the control loop
// that a live, resizing container needs: a debounced [ResizeWatcher], a
// single-flight recompute guard, position application to live card handles,
// and completion notifications.
//
// # State Machine
//
// The engine moves Idle → Computing → Idle. Triggers are a debounced resize,
// a card-set mutation (add/remove/clear), an option change, or an explicit
// [Engine.Recompute]. If a trigger arrives while a pass is in flight it is
// coalesced into a single pending recomputation that runs immediately after
// the current pass finishes (last-request-wins, no queue).
//
// # Failure Behavior
//
// Nothing in the engine is fatal to the host view. An unmeasurable container
// defers computation, a panicking pass is caught and logged, and a missing
// card handle is skipped for one pass. In every case the previous completed
// result is retained; consumers never observe a partially built layout.
//
// # Usage
//
//	eng, err := engine.New(engine.Config{
//	    Measure: func() layout.Viewport { return measureContainer() },
//	    Options: layout.DefaultOptions(),
//	    Logger:  logger,
//	})
//	if err != nil {
//	    return err
//	}
//	defer eng.Destroy()
//
//	stop := eng.OnLayoutComputed(func(res layout.Result) {
//	    // react to the completed layout
//	})
//	defer stop()
//
//	eng.AddCard(cardHandle)
//	eng.Recompute()
package engine
