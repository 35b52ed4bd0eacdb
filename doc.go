/*
Package steady decides what connection status a user interface should
currently display, suppressing noisy flapping.

A connection that drops and recovers within five seconds was never worth
alarming anyone about. steady hides those blips: an Indicator watches a
status source and holds any non-connected status back for DisconnectionDelay
before authorizing it for display, while recovery is always reflected
immediately. Rapid intermediate changes never extend the deadline, and a
recovery that lands while a reveal is pending cancels it.

steady is designed to be embedded inside an interactive application, not run
as a standalone service. It has no process surface of its own.

# Basic Usage

Push statuses into a Store and start an Indicator on it:

	store := steady.NewStore(steady.StatusConnected)

	indicator := steady.New(store, func() {
	    devices.Reload() // runs on Connected and Disconnected observations
	})

	if err := indicator.Start(ctx); err != nil {
	    return err
	}

	store.Set(steady.StatusDisconnected)

Query the display decision whenever the UI redraws:

	if indicator.ShouldDisplay() {
	    d := indicator.Display()
	    draw(d.Gradient, d.Icon, d.Label)
	}

# Sources

Any implementation of Source works. Store is the in-process push source;
FileSource watches a status document maintained by a connectivity agent:

	source := steady.NewFileSource("/run/agent/link-status.yaml")
	indicator := steady.New(source, nil)

# Observability

Lifecycle and reveal decisions are emitted as capitan signals. Hook the ones
you care about:

	capitan.Hook(steady.IndicatorRevealed, func(_ context.Context, e *capitan.Event) {
	    status, _ := steady.KeyStatus.From(e)
	    log.Printf("connection indicator revealed: %s", status)
	})

For metrics systems, implement MetricsProvider and pass WithMetrics.

# Testing

WithSyncMode and WithClock make the reveal machinery fully deterministic:
statuses and due timers are handled only through Process calls, and a
clockz.FakeClock controls when the reveal deadline passes.
*/
package steady
