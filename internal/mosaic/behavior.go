package mosaic

import "github.com/fathom/blinker/internal/eye"

// Behavior is one randomized micro-behavior an idle eye can perform.
type Behavior uint8

const (
	NoBehavior Behavior = iota
	LookLeft
	LookCenterHorizontal
	LookRight
	Blink
	LookUp
	LookCenterVertical
	LookDown
)

func (b Behavior) String() string {
	switch b {
	case LookLeft:
		return "look-left"
	case LookCenterHorizontal:
		return "look-center-h"
	case LookRight:
		return "look-right"
	case Blink:
		return "blink"
	case LookUp:
		return "look-up"
	case LookCenterVertical:
		return "look-center-v"
	case LookDown:
		return "look-down"
	default:
		return "none"
	}
}

// Apply triggers the behavior on e.
func (b Behavior) Apply(e *eye.Eye) {
	switch b {
	case LookLeft:
		e.LookLeft()
	case LookCenterHorizontal:
		e.LookCenterHorizontal()
	case LookRight:
		e.LookRight()
	case Blink:
		e.Blink()
	case LookUp:
		e.LookUp()
	case LookCenterVertical:
		e.LookCenterVertical()
	case LookDown:
		e.LookDown()
	}
}

// Band maps a uniform draw below UpTo to a behavior. Bands are cumulative and
// checked in order.
type Band struct {
	UpTo     float64
	Behavior Behavior
}

// HorizontalBands always yields a behavior: a horizontal look or a blink.
var HorizontalBands = []Band{
	{UpTo: 0.17, Behavior: LookLeft},
	{UpTo: 0.33, Behavior: LookCenterHorizontal},
	{UpTo: 0.50, Behavior: LookRight},
	{UpTo: 1.00, Behavior: Blink},
}

// VerticalBands leaves the vertical target alone on half of all draws.
var VerticalBands = []Band{
	{UpTo: 0.17, Behavior: LookUp},
	{UpTo: 0.33, Behavior: LookCenterVertical},
	{UpTo: 0.50, Behavior: LookDown},
}

// Choose returns the behavior of the first band whose bound exceeds r.
func Choose(bands []Band, r float64) Behavior {
	for _, b := range bands {
		if r < b.UpTo {
			return b.Behavior
		}
	}
	return NoBehavior
}
