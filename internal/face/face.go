// Package face wires the mosaic to screen transitions: glances on screen-on,
// the overnight reset on screen-off, and frames while interactive.
package face

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fathom/blinker/internal/config"
	"github.com/fathom/blinker/internal/glance"
	"github.com/fathom/blinker/internal/mosaic"
	"github.com/fathom/blinker/internal/schedule"
)

// Face is the watch face engine. Like the mosaic it is driven from one loop.
type Face struct {
	mosaic  *mosaic.Mosaic
	tracker *glance.Tracker
	reset   *schedule.Overnight
	log     *slog.Logger

	screenOn bool
	resets   int
}

// New builds a face from cfg, populates the configured layout and counts the
// populating glance. now anchors the glance clock and the reset schedule.
func New(cfg *config.Config, rng mosaic.Rand, log *slog.Logger, now time.Time) (*Face, error) {
	layout, ok := mosaic.Layout(cfg.Face.Layout)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", cfg.Face.Layout)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	mcfg := cfg.Mosaic.ToMosaic()
	m := mosaic.New(mcfg, rng, mosaic.WithLogger(log))
	m.Populate(layout)

	f := &Face{
		mosaic:   m,
		tracker:  glance.NewTracker(mcfg.ConsecutiveWindow, cfg.Face.Accelerate, now),
		reset:    schedule.NewOvernight(cfg.Face.ResetHour, now),
		log:      log,
		screenOn: true,
	}
	res := f.tracker.DeliverPrime(m)
	log.Info("face ready",
		"eyes", m.Len(),
		"layout", cfg.Face.Layout,
		"active", res.Activated,
		"reset_at", f.reset.Pending(),
	)
	return f, nil
}

// ScreenOn counts a glance at now. It is a no-op if the screen is already on.
func (f *Face) ScreenOn(now time.Time) mosaic.GlanceResult {
	if f.screenOn {
		return mosaic.GlanceResult{}
	}
	f.screenOn = true
	return f.tracker.Deliver(f.mosaic, now)
}

// ScreenOff ends a glance at now and runs the overnight reset if it is due.
// It reports whether a reset happened.
func (f *Face) ScreenOff(now time.Time) bool {
	if !f.screenOn {
		return false
	}
	f.screenOn = false

	reset := f.reset.Due(now)
	if reset {
		f.Reset()
	}
	f.tracker.ScreenOff(now)
	return reset
}

// Glance is a full cycle: the screen goes off at off and back on at on.
func (f *Face) Glance(off, on time.Time) mosaic.GlanceResult {
	f.ScreenOff(off)
	return f.ScreenOn(on)
}

// Reset zeroes the glance total and takes every eye off stage.
func (f *Face) Reset() {
	f.tracker.Reset()
	f.mosaic.Reset()
	f.resets++
	f.log.Info("overnight reset", "next", f.reset.Pending())
}

// Tick advances one frame. Frames only run while the screen is on.
func (f *Face) Tick() {
	if f.screenOn {
		f.mosaic.Tick()
	}
}

func (f *Face) Mosaic() *mosaic.Mosaic { return f.mosaic }
func (f *Face) Glances() int           { return f.tracker.Total() }
func (f *Face) Consecutive() int       { return f.tracker.Consecutive() }
func (f *Face) ScreenIsOn() bool       { return f.screenOn }
func (f *Face) Resets() int            { return f.resets }
func (f *Face) NextReset() time.Time   { return f.reset.Pending() }
