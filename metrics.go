package steady

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key indicator events.
type MetricsProvider interface {
	// OnStatusChange is called when a raw status change is processed.
	OnStatusChange(from, to Status)

	// OnRevealScheduled is called when a delayed reveal timer is armed.
	// Remaining is the time until the reveal would fire.
	OnRevealScheduled(remaining time.Duration)

	// OnReveal is called when the indicator becomes visible.
	// HeldFor is the time between the first disconnection and the reveal.
	OnReveal(heldFor time.Duration)

	// OnBlipSuppressed is called when a recovery arrives while a reveal is
	// still pending. Blip is how long the connection was away.
	OnBlipSuppressed(blip time.Duration)

	// OnRefresh is called when the external refresh hook is invoked.
	OnRefresh()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStatusChange(_, _ Status)        {}
func (NoOpMetricsProvider) OnRevealScheduled(_ time.Duration) {}
func (NoOpMetricsProvider) OnReveal(_ time.Duration)          {}
func (NoOpMetricsProvider) OnBlipSuppressed(_ time.Duration)  {}
func (NoOpMetricsProvider) OnRefresh()                        {}
