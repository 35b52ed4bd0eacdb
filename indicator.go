package steady

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DisconnectionDelay is how long a non-connected status must persist before
// the indicator is revealed. Blips shorter than this are never shown. The
// delay is a fixed design constant, not a tunable.
const DisconnectionDelay = 5 * time.Second

// defaultTransitionLog is the default capacity of the transition ring.
const defaultTransitionLog = 16

// Indicator watches a connection-status source and decides what a user
// interface should currently display, suppressing short connectivity blips.
// Recovery is reflected immediately; any non-connected status is held back
// until it has persisted for DisconnectionDelay.
type Indicator struct {
	source   Source
	refresh  func()
	syncMode bool
	clock    clockz.Clock
	metrics  MetricsProvider

	displayed atomic.Int32
	hidden    atomic.Bool

	mu      sync.Mutex
	started bool

	// Owned by the processing goroutine (or the Process caller in sync mode).
	lastRaw           Status
	disconnectedSince time.Time
	timer             clockz.Timer
	armed             bool
	ring              *transitionRing

	// For sync mode: channel to receive status changes
	changes <-chan Status
}

// config holds configuration options for an Indicator.
type config struct {
	syncMode    bool
	clock       clockz.Clock
	metrics     MetricsProvider
	transitions int
}

// Option configures an Indicator.
type Option func(*config)

// WithSyncMode enables synchronous processing for testing.
// In sync mode, statuses and timer firings are handled only through explicit
// Process calls, making tests deterministic.
func WithSyncMode() Option {
	return func(c *config) {
		c.syncMode = true
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic reveal testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithMetrics sets a metrics provider receiving indicator event callbacks.
func WithMetrics(m MetricsProvider) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithTransitionLog sets the capacity of the in-memory transition log.
// A capacity of 0 disables the log.
func WithTransitionLog(n int) Option {
	return func(c *config) {
		c.transitions = n
	}
}

// New creates a new Indicator for a single status source.
//
// The source emits statuses when the connection changes. The refresh hook is
// invoked whenever a Connected or Disconnected status is observed; hosts use
// it to re-fetch state that depends on connectivity. A nil refresh is
// treated as a no-op.
//
// Example:
//
//	store := steady.NewStore(steady.StatusConnected)
//	indicator := steady.New(store, func() {
//	    devices.Reload()
//	})
func New(source Source, refresh func(), opts ...Option) *Indicator {
	cfg := &config{
		clock:       clockz.RealClock,
		metrics:     NoOpMetricsProvider{},
		transitions: defaultTransitionLog,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if refresh == nil {
		refresh = func() {}
	}

	i := &Indicator{
		source:   source,
		refresh:  refresh,
		syncMode: cfg.syncMode,
		clock:    cfg.clock,
		metrics:  cfg.metrics,
		ring:     newTransitionRing(cfg.transitions),
	}
	i.displayed.Store(int32(StatusDisconnected))
	i.hidden.Store(true)

	return i
}

// ShouldDisplay reports whether the indicator should currently be shown.
func (i *Indicator) ShouldDisplay() bool {
	return !i.hidden.Load()
}

// Displayed returns the status currently authorized for display.
func (i *Indicator) Displayed() Status {
	return Status(i.displayed.Load())
}

// Display returns the rendering-ready projection of the displayed status.
func (i *Indicator) Display() Display {
	return DisplayFor(i.Displayed())
}

// Transitions returns the recent raw status transitions, oldest first.
// Returns nil if the transition log is disabled.
func (i *Indicator) Transitions() []Transition {
	return i.ring.all()
}

// Start begins watching the source. It blocks until the initial status is
// observed, then continues watching asynchronously. The initial observation
// is mount state, not a transition: it sets the displayed status but arms no
// timer and triggers no refresh.
//
// In sync mode, Start only consumes the initial status. Use Process() to
// handle subsequent statuses and timer firings.
//
// Start can only be called once. Subsequent calls return an error.
func (i *Indicator) Start(ctx context.Context) error {
	i.mu.Lock()
	if i.started {
		i.mu.Unlock()
		return fmt.Errorf("indicator already started")
	}
	i.started = true
	i.mu.Unlock()

	capitan.Emit(ctx, IndicatorStarted,
		KeyDelay.Field(DisconnectionDelay),
	)

	changes, err := i.source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start source watch: %w", err)
	}

	// Wait for the initial status and adopt it as mount state
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s, ok := <-changes:
		if !ok {
			return fmt.Errorf("source closed before emitting initial status")
		}
		i.lastRaw = s
		i.displayed.Store(int32(s))
		i.hidden.Store(true)
	}

	if i.syncMode {
		// In sync mode, store channel for manual processing
		i.changes = changes
		return nil
	}

	// Continue watching asynchronously
	go i.watch(ctx, changes)

	return nil
}

// Process handles the next pending event: a status change if one is queued,
// otherwise a due reveal timer. This is only available in sync mode and is
// used for deterministic testing. Returns false if nothing is pending or the
// source channel is closed.
func (i *Indicator) Process(ctx context.Context) bool {
	if !i.syncMode {
		return false
	}

	var timerC <-chan time.Time
	if i.armed {
		timerC = i.timer.C()
	}

	select {
	case s, ok := <-i.changes:
		if !ok {
			i.cancelReveal(ctx)
			return false
		}
		i.observe(ctx, s)
		return true
	case <-timerC:
		i.revealDue(ctx)
		return true
	default:
		return false
	}
}

// watch processes source statuses and reveal timer firings.
func (i *Indicator) watch(ctx context.Context, changes <-chan Status) {
	defer func() {
		capitan.Emit(ctx, IndicatorStopped,
			KeyDisplayed.Field(i.Displayed().String()),
		)
	}()

	for {
		// Get timer channel or nil if no reveal is pending
		var timerC <-chan time.Time
		if i.armed {
			timerC = i.timer.C()
		}

		select {
		case <-ctx.Done():
			i.cancelReveal(ctx)
			return

		case s, ok := <-changes:
			if !ok {
				// Source gone; release any pending reveal
				i.cancelReveal(ctx)
				return
			}
			i.observe(ctx, s)

		case <-timerC:
			i.revealDue(ctx)
		}
	}
}

// observe handles a single delivered status change. A newly observed status
// always cancels any pending reveal before deciding what happens next.
func (i *Indicator) observe(ctx context.Context, s Status) {
	capitan.Emit(ctx, StatusReceived,
		KeyStatus.Field(s.String()),
		KeyDisplayed.Field(i.Displayed().String()),
	)

	i.cancelReveal(ctx)

	if from := i.lastRaw; from != s {
		i.lastRaw = s
		i.metrics.OnStatusChange(from, s)
		i.ring.push(Transition{From: from, To: s, At: i.clock.Now()})
		capitan.Emit(ctx, StatusChanged,
			KeyOldStatus.Field(from.String()),
			KeyNewStatus.Field(s.String()),
		)
	}

	if s == StatusConnected {
		i.conceal(ctx)
	} else {
		i.holdOrReveal(ctx, s)
	}

	// Connected and Disconnected change what the host should fetch;
	// Connecting and Error do not.
	if s == StatusConnected || s == StatusDisconnected {
		i.refresh()
		i.metrics.OnRefresh()
		capitan.Emit(ctx, RefreshTriggered,
			KeyStatus.Field(s.String()),
		)
	}
}

// conceal applies a Connected observation: the indicator hides immediately.
// Recovery is never delayed.
func (i *Indicator) conceal(ctx context.Context) {
	if !i.disconnectedSince.IsZero() {
		if i.hidden.Load() {
			i.metrics.OnBlipSuppressed(i.clock.Since(i.disconnectedSince))
		} else {
			capitan.Emit(ctx, IndicatorHidden,
				KeyStatus.Field(StatusConnected.String()),
			)
		}
	}
	i.disconnectedSince = time.Time{}
	i.displayed.Store(int32(StatusConnected))
	i.hidden.Store(true)
}

// holdOrReveal applies a non-connected observation. The reveal deadline is
// measured from the first departure from Connected, so intermediate status
// changes never extend it.
func (i *Indicator) holdOrReveal(ctx context.Context, s Status) {
	now := i.clock.Now()
	if i.disconnectedSince.IsZero() {
		i.disconnectedSince = now
	}

	elapsed := now.Sub(i.disconnectedSince)
	if elapsed >= DisconnectionDelay {
		i.reveal(ctx, s, elapsed)
		return
	}

	remaining := DisconnectionDelay - elapsed
	i.armReveal(ctx, remaining, elapsed)
}

// revealDue handles a fired reveal timer. It re-reads the live status from
// the source: a recovery that happened between scheduling and firing must
// win over the stale observation that armed the timer.
func (i *Indicator) revealDue(ctx context.Context) {
	i.armed = false

	live := i.source.Latest()
	if live == StatusConnected {
		// The recovery observation is already on its way; stay hidden.
		return
	}
	i.reveal(ctx, live, i.clock.Since(i.disconnectedSince))
}

// reveal authorizes a status for display.
func (i *Indicator) reveal(ctx context.Context, s Status, heldFor time.Duration) {
	i.displayed.Store(int32(s))
	if i.hidden.Swap(false) {
		i.metrics.OnReveal(heldFor)
		capitan.Emit(ctx, IndicatorRevealed,
			KeyStatus.Field(s.String()),
			KeyHeldFor.Field(heldFor),
		)
	}
}

// armReveal schedules the reveal timer for the remaining window, replacing
// any previous schedule. At most one timer is ever live.
func (i *Indicator) armReveal(ctx context.Context, remaining, elapsed time.Duration) {
	if i.timer == nil {
		i.timer = i.clock.NewTimer(remaining)
	} else {
		if !i.timer.Stop() {
			select {
			case <-i.timer.C():
			default:
			}
		}
		i.timer.Reset(remaining)
	}
	i.armed = true

	i.metrics.OnRevealScheduled(remaining)
	capitan.Emit(ctx, RevealScheduled,
		KeyRemaining.Field(remaining),
		KeyElapsed.Field(elapsed),
	)
}

// cancelReveal stops a pending reveal timer, if any, and drains its channel
// so the timer can be reused.
func (i *Indicator) cancelReveal(ctx context.Context) {
	if !i.armed {
		return
	}
	i.armed = false

	if !i.timer.Stop() {
		select {
		case <-i.timer.C():
		default:
		}
	}

	capitan.Emit(ctx, RevealCanceled,
		KeyDisplayed.Field(i.Displayed().String()),
	)
}
