// Package mosaic owns a fixed pool of eyes and decides, glance by glance and
// frame by frame, which of them are on stage and what they do.
//
// A Mosaic is not safe for concurrent use. The host drives it from a single
// loop: AddEye during setup, then OnGlance, Tick, Render and Reset.
package mosaic

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/fathom/blinker/internal/eye"
	"github.com/fathom/blinker/internal/logging"
)

const initialCapacity = 8

// Rand is the uniform random source the policy draws from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Glance describes one glance as seen by the host. Total and Consecutive are
// the host's running counters, already including this glance.
type Glance struct {
	Increment   int
	Elapsed     time.Duration
	Total       int
	Consecutive int
}

// GlanceResult reports what a glance changed. Consecutive is the streak
// counter the host should carry into the next glance.
type GlanceResult struct {
	Activated   int
	Deactivated int
	WideOpen    bool
	Consecutive int
}

// Option configures a Mosaic.
type Option func(*Mosaic)

// WithLogger routes policy decisions to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mosaic) {
		if l != nil {
			m.log = l
		}
	}
}

// Mosaic is the eye population and its glance policy.
type Mosaic struct {
	cfg Config
	rng Rand
	log *slog.Logger

	eyes     []*eye.Eye
	active   []int
	inactive []int
	work     worklist

	blinkChance float64
	wideOpen    bool
}

// New returns an empty mosaic drawing randomness from rng.
func New(cfg Config, rng Rand, opts ...Option) *Mosaic {
	m := &Mosaic{
		cfg:  cfg.withDivisorDefaults(),
		rng:  rng,
		log:  slog.New(slog.DiscardHandler),
		eyes: make([]*eye.Eye, 0, initialCapacity),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddEye appends a new inactive eye centered at (x, y) and returns its index.
// It is meant for setup, before the first glance.
func (m *Mosaic) AddEye(x, y, width float64) int {
	if len(m.eyes) == cap(m.eyes) {
		grown := make([]*eye.Eye, len(m.eyes), 2*cap(m.eyes))
		copy(grown, m.eyes)
		m.eyes = grown
	}

	id := len(m.eyes)
	color := eye.Palette[m.rng.IntN(len(eye.Palette))]
	m.eyes = append(m.eyes, eye.New(id, x, y, width, color, &m.work))
	m.inactive = append(m.inactive, id)
	m.work.grow(len(m.eyes))
	return id
}

// Tick runs one frame: maybe one random behavior on one active eye, then an
// update step for every eye still animating.
func (m *Mosaic) Tick() {
	if len(m.active) > 0 {
		chance := m.blinkChance / float64(len(m.eyes)*m.cfg.BlinkChanceFactor)
		if m.rng.Float64() < chance {
			e := m.eyes[m.active[m.rng.IntN(len(m.active))]]
			// wide-open eyes hold still until the next glance
			if !e.WideOpen() {
				h := Choose(HorizontalBands, m.rng.Float64())
				h.Apply(e)
				v := Choose(VerticalBands, m.rng.Float64())
				v.Apply(e)
				m.log.Log(context.Background(), logging.LevelTrace, "behavior", "eye", e.ID(), "horizontal", h, "vertical", v)
			}
		}
	}

	m.work.advance(m.eyes)
}

// OnGlance applies the population and wide-open policy for one glance.
func (m *Mosaic) OnGlance(g Glance) GlanceResult {
	inc := g.Increment
	if inc < 1 {
		inc = 1
	}

	if m.wideOpen {
		for _, id := range m.active {
			e := m.eyes[id]
			e.ClearWideOpen()
			e.Open()
		}
		m.wideOpen = false
	}

	res := GlanceResult{Consecutive: g.Consecutive}

	if g.Elapsed > m.cfg.BaseAbsence {
		popout := int((g.Elapsed - m.cfg.BaseAbsence) / m.cfg.PopoutPeriod)
		res.Deactivated = m.deactivateRandom(popout * inc)
		m.adjustBlinkChance(-float64(popout*inc) * m.cfg.BlinkRatio)
		m.log.Debug("eyes popped out", "elapsed", g.Elapsed, "popout", popout, "deactivated", res.Deactivated)
	} else if g.Total%m.cfg.GlancesPerEye == 0 {
		res.Activated = m.activateRandom(inc)
		m.adjustBlinkChance(float64(inc) * m.cfg.BlinkRatio)
		m.log.Debug("eyes added", "total", g.Total, "activated", res.Activated)
	}

	if m.cfg.StreakTrigger > 0 && g.Consecutive >= m.cfg.StreakTrigger {
		for _, id := range m.active {
			e := m.eyes[id]
			e.LookCenter()
			e.OpenWide()
		}
		m.wideOpen = true
		res.WideOpen = true
		res.Consecutive = 1
		m.log.Debug("eyes wide open", "consecutive", g.Consecutive, "active", len(m.active))
	}

	m.log.Debug("glance",
		"total", g.Total,
		"elapsed", g.Elapsed,
		"active", len(m.active),
		"blink_chance", m.blinkChance,
	)
	return res
}

// Reset takes every eye off stage and clears all accumulated state.
func (m *Mosaic) Reset() {
	for _, id := range m.active {
		m.eyes[id].Deactivate()
	}
	m.inactive = append(m.inactive, m.active...)
	m.active = m.active[:0]
	m.blinkChance = 0
	m.wideOpen = false
	m.work.clear()
	m.log.Debug("mosaic reset", "eyes", len(m.eyes))
}

// Render calls draw for every active eye in activation order.
func (m *Mosaic) Render(draw func(*eye.Eye)) {
	for _, id := range m.active {
		draw(m.eyes[id])
	}
}

func (m *Mosaic) activateRandom(n int) int {
	done := 0
	for ; done < n && len(m.inactive) > 0; done++ {
		i := m.rng.IntN(len(m.inactive))
		id := m.inactive[i]
		m.inactive = slices.Delete(m.inactive, i, i+1)
		m.active = append(m.active, id)
		m.eyes[id].Activate()
	}
	return done
}

func (m *Mosaic) deactivateRandom(n int) int {
	done := 0
	for ; done < n && len(m.active) > 0; done++ {
		i := m.rng.IntN(len(m.active))
		id := m.active[i]
		m.active = slices.Delete(m.active, i, i+1)
		m.inactive = append(m.inactive, id)
		m.eyes[id].Deactivate()
		m.work.drop(id)
	}
	return done
}

func (m *Mosaic) adjustBlinkChance(delta float64) {
	m.blinkChance += delta
	if m.blinkChance < 0 {
		m.blinkChance = 0
	}
}

// Len returns the number of eyes in the pool.
func (m *Mosaic) Len() int { return len(m.eyes) }

// Eye returns the eye at index id.
func (m *Mosaic) Eye(id int) *eye.Eye { return m.eyes[id] }

// ActiveIDs returns a copy of the active indices in activation order.
func (m *Mosaic) ActiveIDs() []int { return slices.Clone(m.active) }

// InactiveIDs returns a copy of the inactive indices.
func (m *Mosaic) InactiveIDs() []int { return slices.Clone(m.inactive) }

// PendingIDs returns a copy of the indices still animating.
func (m *Mosaic) PendingIDs() []int { return slices.Clone(m.work.ids) }

// Pending reports whether eye id is on the worklist.
func (m *Mosaic) Pending(id int) bool { return m.work.contains(id) }

func (m *Mosaic) ActiveCount() int { return len(m.active) }

func (m *Mosaic) BlinkChance() float64 { return m.blinkChance }

// WideOpen reports whether the last glance forced every eye wide open.
func (m *Mosaic) WideOpen() bool { return m.wideOpen }

// Config returns the tuning in effect.
func (m *Mosaic) Config() Config { return m.cfg }
