// Package frame provides the clock and animation-frame scheduling primitives
// the monitor runs on.
//
// # Execution model
//
// Everything the monitor does happens on one goroutine. A Loop owns that
// goroutine and runs posted tasks in order. A TickerScheduler turns a
// time.Ticker into animation frames: every tick it posts one task to the
// Loop which runs the callbacks requested before that tick, in request order.
// Callbacks requested while a frame runs are deferred to the next frame, the
// same way requestAnimationFrame behaves in a browser.
//
//	loop := frame.NewLoop(64)
//	sched := frame.NewTickerScheduler(loop, frame.DefaultRefreshInterval)
//	go sched.Run(ctx)
//	_ = loop.Run(ctx)
//
// ManualScheduler and ManualClock provide the same semantics driven by
// explicit Step calls, for deterministic tests and simulations.
package frame
