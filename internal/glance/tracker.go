// Package glance turns screen on/off transitions into mosaic glances. It owns
// the running counters so the mosaic never reads shared state.
package glance

import (
	"time"

	"github.com/fathom/blinker/internal/mosaic"
)

// Tracker counts glances and measures the gap since the screen last went off.
type Tracker struct {
	window    time.Duration
	increment int

	total       int
	consecutive int
	lastOff     time.Time
}

// NewTracker starts counting at now with an empty streak. Glances closer
// together than window extend the consecutive streak. increment is how much
// each glance counts for; values below 1 count as 1.
func NewTracker(window time.Duration, increment int, now time.Time) *Tracker {
	if increment < 1 {
		increment = 1
	}
	return &Tracker{
		window:    window,
		increment: increment,
		lastOff:   now,
	}
}

// Prime counts the glance that populates the face, with no elapsed time.
// It does not touch the streak.
func (t *Tracker) Prime() mosaic.Glance {
	t.total += t.increment
	return mosaic.Glance{
		Increment:   t.increment,
		Total:       t.total,
		Consecutive: t.consecutive,
	}
}

// ScreenOn counts a glance at now.
func (t *Tracker) ScreenOn(now time.Time) mosaic.Glance {
	elapsed := now.Sub(t.lastOff)
	if elapsed < 0 {
		elapsed = 0
	}

	t.total += t.increment
	if elapsed < t.window {
		t.consecutive++
	} else {
		t.consecutive = 1
	}

	return mosaic.Glance{
		Increment:   t.increment,
		Elapsed:     elapsed,
		Total:       t.total,
		Consecutive: t.consecutive,
	}
}

// ScreenOff marks the end of a glance.
func (t *Tracker) ScreenOff(now time.Time) {
	t.lastOff = now
}

// Apply adopts the streak counter a glance left behind.
func (t *Tracker) Apply(res mosaic.GlanceResult) {
	if res.Consecutive > 0 {
		t.consecutive = res.Consecutive
	}
}

// Reset zeroes the glance total, as on an overnight reset.
func (t *Tracker) Reset() {
	t.total = 0
}

// Deliver counts a screen-on at now, hands the glance to m and carries the
// resulting streak counter forward.
func (t *Tracker) Deliver(m *mosaic.Mosaic, now time.Time) mosaic.GlanceResult {
	res := m.OnGlance(t.ScreenOn(now))
	t.Apply(res)
	return res
}

// DeliverPrime is Deliver for the populating glance.
func (t *Tracker) DeliverPrime(m *mosaic.Mosaic) mosaic.GlanceResult {
	res := m.OnGlance(t.Prime())
	t.Apply(res)
	return res
}

func (t *Tracker) Total() int       { return t.total }
func (t *Tracker) Consecutive() int { return t.consecutive }
func (t *Tracker) Increment() int   { return t.increment }
