// Package ease provides the exponential ease-toward-target value used for
// every animated attribute of an eye.
package ease

import "math"

// StopEpsilon is the distance below which a property snaps onto its target.
const StopEpsilon = 1.0

// Property is a single animated value that converges on Target by Rate of the
// remaining distance per step.
type Property struct {
	Current float64
	Target  float64
	Rate    float64
}

// New returns a property resting at v.
func New(v, rate float64) Property {
	return Property{Current: v, Target: v, Rate: rate}
}

// Step advances the property one tick and reports whether it is on target.
func (p *Property) Step() bool {
	diff := p.Target - p.Current
	if math.Abs(diff) < StopEpsilon {
		p.Current = p.Target
	} else {
		p.Current += p.Rate * diff
	}
	return p.Current == p.Target
}

// Settled reports whether Current has reached Target exactly.
func (p Property) Settled() bool {
	return p.Current == p.Target
}

// Jump sets both Current and Target to v with no transition.
func (p *Property) Jump(v float64) {
	p.Current = v
	p.Target = v
}
