// Package rendermon samples render performance for individual UI components.
//
// A Monitor is attached to one component instance. The host calls Render (or
// BeginCycle and Commit) around every render of the component, and a frame
// Scheduler delivers animation frames. For every sampled render the monitor
// measures four phases and reports frame, timing, DOM and memory metrics to
// a Sink.
//
// # Quick Start
//
//	loop := rendermon.NewLoop(64)
//	sched := rendermon.NewTickerScheduler(loop, 0)
//	go sched.Run(ctx)
//
//	mon := rendermon.New("Counter", rendermon.Options{
//	    Scheduler: sched,
//	    Document:  tree,
//	})
//	defer mon.Teardown()
//
//	cfg := &rendermon.Config{SampleRate: 5}
//	loop.Post(func() { mon.Render(cfg, component.Render) })
//	loop.Run(ctx)
//
// # Configuration
//
// Each metric family is false, true, or a partial object of switches:
//
//	cfg := &rendermon.Config{
//	    Frames: rendermon.FramesFamily{Mode: rendermon.Partial, Options: rendermon.FramesOptions{Drops: rendermon.Bool(true)}},
//	    Memory: rendermon.MemoryFamily{Mode: rendermon.Enabled},
//	    DOM:    rendermon.DOMFamily{Mode: rendermon.Disabled},
//	}
//
// Configurations can also be loaded from YAML or JSON:
//
//	cfg, err := rendermon.LoadConfig("monitor.yaml")
//
// The monitor re-resolves a configuration only when a different *Config is
// passed, so keep passing the same pointer while the configuration is
// unchanged.
//
// # Sinks
//
// Reports go to Logging.OnMetrics if set, otherwise to Options.DefaultSink,
// which defaults to a colored console sink on standard error. Any function
// can serve as a sink:
//
//	sink := rendermon.SinkFunc(func(label string, values rendermon.Formatted) {
//	    fmt.Println(label, values["fps"], values["total"])
//	})
package rendermon
