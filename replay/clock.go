// Copyright (c) 2025 Neomantra Corp

// Package replay paces snapshot delivery to wall-clock time using the
// nanosecond timestamps embedded in ITCH messages. The order book engine
// itself is never paced; pacing applies only on the broadcaster delivery
// path, between the emitter and the broadcaster.
package replay

import (
	"log/slog"
	"time"
)

// DefaultCatchupThreshold is how far behind schedule wall time may drift
// before the clock gives up and re-anchors, per §4.7.
const DefaultCatchupThreshold = 1 * time.Second

// Config configures a Clock.
type Config struct {
	// CatchupThreshold bounds how far wall time may lag the scheduled
	// deadline before the clock re-anchors instead of trying to catch up.
	// Zero means DefaultCatchupThreshold.
	CatchupThreshold time.Duration

	// Logger receives structured diagnostics. Falls back to
	// slog.Default() if nil.
	Logger *slog.Logger

	// now and sleep are overridable for deterministic tests; both default
	// to the real wall clock.
	now   func() time.Time
	sleep func(time.Duration)
}

// Clock paces a sequence of monotonically non-decreasing event
// timestamps (nanoseconds since midnight) to wall-clock time.
type Clock struct {
	catchupThreshold time.Duration
	logger           *slog.Logger
	now              func() time.Time
	sleep            func(time.Duration)

	anchored      bool
	wallAnchor    time.Time
	eventAnchorNs uint64

	// pendingAnchor, if set, overrides the wall-clock instant used on the
	// very next WaitFor call, letting an operator replay a capture as
	// though the run began at a specific time instead of the moment
	// WaitFor was first called. Callers should set this before the first
	// WaitFor; setting it later overrides that one call's notion of "now"
	// rather than the established anchor.
	pendingAnchor *time.Time
}

// NewClock returns a Clock with no anchor set; the first call to WaitFor
// establishes the anchor and returns immediately.
func NewClock(cfg Config) *Clock {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	catchup := cfg.CatchupThreshold
	if catchup <= 0 {
		catchup = DefaultCatchupThreshold
	}
	now := cfg.now
	if now == nil {
		now = time.Now
	}
	sleep := cfg.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Clock{
		catchupThreshold: catchup,
		logger:           logger.With("component", "replay"),
		now:              now,
		sleep:            sleep,
	}
}

// AnchorAt overrides the wall-clock instant that the next WaitFor call
// will treat as "now". Intended to be called once, before the first
// WaitFor, so that call establishes the anchor at the given time instead
// of the real current time.
func (c *Clock) AnchorAt(wallTime time.Time) {
	c.pendingAnchor = &wallTime
}

// WaitFor blocks until wall time has caught up to the pacing schedule for
// eventNs, an ITCH nanosecond timestamp. The first call anchors the clock
// and returns immediately.
func (c *Clock) WaitFor(eventNs uint64) {
	now := c.now()
	if c.pendingAnchor != nil {
		now = *c.pendingAnchor
		c.pendingAnchor = nil
	}

	if !c.anchored {
		c.wallAnchor = now
		c.eventAnchorNs = eventNs
		c.anchored = true
		return
	}

	elapsed := time.Duration(eventNs-c.eventAnchorNs) * time.Nanosecond
	deadline := c.wallAnchor.Add(elapsed)

	lag := now.Sub(deadline)
	if lag > c.catchupThreshold {
		c.logger.Warn("replay clock re-anchoring after exceeding catch-up threshold",
			"lag", lag, "threshold", c.catchupThreshold)
		c.wallAnchor = now
		c.eventAnchorNs = eventNs
		return
	}

	if wait := deadline.Sub(now); wait > 0 {
		c.sleep(wait)
	}
}
