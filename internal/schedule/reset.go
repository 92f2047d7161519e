// Package schedule decides when the face's daily reset is due.
package schedule

import "time"

// Disabled turns the overnight reset off when used as the hour.
const Disabled = -1

// Overnight fires once per day at a fixed local hour.
type Overnight struct {
	hour int
	next time.Time
}

// NewOvernight arms the reset for the first occurrence of hour after now.
// An hour outside 0..23 disables it.
func NewOvernight(hour int, now time.Time) *Overnight {
	o := &Overnight{hour: hour}
	if o.Enabled() {
		o.next = Next(hour, now)
	}
	return o
}

// Next returns today's reset instant at hour in now's location, or
// tomorrow's if now is already past it.
func Next(hour int, now time.Time) time.Time {
	y, m, d := now.Date()
	at := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if now.After(at) {
		at = time.Date(y, m, d+1, hour, 0, 0, 0, now.Location())
	}
	return at
}

// Due reports whether now has passed the pending reset. A due reset is
// consumed and the next one armed, so each day fires once.
func (o *Overnight) Due(now time.Time) bool {
	if !o.Enabled() || !now.After(o.next) {
		return false
	}
	o.next = Next(o.hour, now)
	return true
}

// Enabled reports whether a reset hour is set.
func (o *Overnight) Enabled() bool {
	return o.hour >= 0 && o.hour <= 23
}

// Pending returns the armed reset instant; zero when disabled.
func (o *Overnight) Pending() time.Time {
	return o.next
}
