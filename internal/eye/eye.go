// Package eye implements a single animated eye: an eyelid aperture, a pupil
// position and a pupil radius, each eased toward a target on every update.
package eye

import "github.com/fathom/blinker/internal/ease"

// Geometry ratios, relative to the eye width unless noted.
const (
	HeightRatio      = 0.50
	IrisRatio        = 0.40 // iris diameter
	PupilRatio       = 0.22 // pupil diameter
	WideOpenRatio    = 0.65
	HorizontalLook   = 0.45 // pupil travel relative to half width
	VerticalLook     = 0.30 // pupil travel relative to half height
	IrisOffsetRatio  = 0.058
	PupilDilation    = 1.20
	PupilContraction = 0.80
)

// Per-tick convergence rates.
const (
	ApertureRate    = 0.40
	PupilMoveRate   = 0.50
	PupilRadiusRate = 0.15
)

// Horizontal is the discrete horizontal look position.
type Horizontal int

const (
	Left Horizontal = iota
	CenterH
	Right
)

// Vertical is the discrete vertical look position.
type Vertical int

const (
	Up Vertical = iota
	CenterV
	Down
)

// Worklist receives an eye's index whenever the eye gets a new target.
type Worklist interface {
	Register(id int)
}

// Eye is one animated eye. All state is mutated from the host's single
// update loop.
type Eye struct {
	id     int
	x, y   float64
	width  float64
	height float64

	irisRadius  float64
	irisOffset  float64
	pupilRadius float64
	color       Color

	aperture    ease.Property
	pupilX      ease.Property
	pupilY      ease.Property
	pupilSize   ease.Property
	horizontal  Horizontal
	vertical    Vertical
	active      bool
	blinking    bool
	wideOpen    bool
	needsUpdate bool

	work Worklist
}

// New creates an inactive eye centered at (x, y). The eye starts closed but
// with an open aperture target, so activating it animates it open.
func New(id int, x, y, width float64, color Color, work Worklist) *Eye {
	height := HeightRatio * width
	irisRadius := 0.5 * IrisRatio * width
	pupilRadius := 0.5 * PupilRatio * width

	e := &Eye{
		id:          id,
		x:           x,
		y:           y,
		width:       width,
		height:      height,
		irisRadius:  irisRadius,
		irisOffset:  irisRadius * IrisOffsetRatio,
		pupilRadius: pupilRadius,
		color:       color,
		aperture:    ease.Property{Current: 0, Target: height, Rate: ApertureRate},
		pupilX:      ease.New(0, PupilMoveRate),
		pupilY:      ease.New(0, PupilMoveRate),
		pupilSize:   ease.New(pupilRadius, PupilRadiusRate),
		horizontal:  CenterH,
		vertical:    CenterV,
		work:        work,
	}
	return e
}

// Update advances every eased property one step and reports whether the eye
// still needs updating. When all properties settle, a blink in its closing
// half reopens the eye; otherwise the blink is over. A zero-height eye has
// nothing to reopen, so its blink ends as soon as it settles.
func (e *Eye) Update() bool {
	apertureDone := e.aperture.Step()
	xDone := e.pupilX.Step()
	yDone := e.pupilY.Step()
	sizeDone := e.pupilSize.Step()

	if apertureDone && xDone && yDone && sizeDone {
		e.needsUpdate = false
		if e.blinking {
			if e.aperture.Target == 0 && e.height > 0 {
				e.Open()
			} else {
				e.blinking = false
			}
		}
	}
	return e.needsUpdate
}

// Activate puts the eye on stage and starts it opening.
func (e *Eye) Activate() {
	e.active = true
	e.Open()
}

// Deactivate takes the eye off stage with no transition. The aperture is left
// closed with an open target so a later Activate animates it open.
func (e *Eye) Deactivate() {
	e.active = false
	e.needsUpdate = false
	e.blinking = false
	e.wideOpen = false
	e.aperture.Current = 0
	e.aperture.Target = e.height
	e.pupilX.Jump(0)
	e.pupilY.Jump(0)
	e.pupilSize.Jump(e.pupilRadius)
	e.horizontal = CenterH
	e.vertical = CenterV
}

// Reset hard-reopens the eye: deactivated state, then active and fully open
// with nothing left to animate.
func (e *Eye) Reset() {
	e.Deactivate()
	e.active = true
	e.aperture.Current = e.height
}

func (e *Eye) Open() {
	e.aperture.Target = e.height
	e.pupilSize.Target = e.pupilRadius
	e.register()
}

func (e *Eye) Close() {
	e.aperture.Target = 0
	e.pupilSize.Target = PupilDilation * e.pupilRadius
	e.register()
}

// Blink closes the eye and reopens it automatically once closed.
func (e *Eye) Blink() {
	e.Close()
	e.blinking = true
}

// OpenWide forces the eye to its maximal aperture with a contracted pupil.
func (e *Eye) OpenWide() {
	e.aperture.Target = WideOpenRatio * e.width
	e.pupilSize.Target = PupilContraction * e.pupilRadius
	e.wideOpen = true
	e.register()
}

// ClearWideOpen drops the wide-open flag without touching any target.
func (e *Eye) ClearWideOpen() {
	e.wideOpen = false
}

func (e *Eye) LookLeft() {
	e.pupilX.Target = -HorizontalLook * e.width / 2
	e.horizontal = Left
	e.register()
}

func (e *Eye) LookCenterHorizontal() {
	e.pupilX.Target = 0
	e.horizontal = CenterH
	e.register()
}

func (e *Eye) LookRight() {
	e.pupilX.Target = HorizontalLook * e.width / 2
	e.horizontal = Right
	e.register()
}

func (e *Eye) LookUp() {
	e.pupilY.Target = -VerticalLook * e.height / 2
	e.vertical = Up
	e.register()
}

func (e *Eye) LookCenterVertical() {
	e.pupilY.Target = 0
	e.vertical = CenterV
	e.register()
}

func (e *Eye) LookDown() {
	e.pupilY.Target = VerticalLook * e.height / 2
	e.vertical = Down
	e.register()
}

// LookCenter centers the pupil on both axes.
func (e *Eye) LookCenter() {
	e.LookCenterHorizontal()
	e.LookCenterVertical()
}

func (e *Eye) register() {
	e.needsUpdate = true
	if e.work != nil {
		e.work.Register(e.id)
	}
}

// Settled reports whether every eased property sits on its target.
func (e *Eye) Settled() bool {
	return e.aperture.Settled() && e.pupilX.Settled() &&
		e.pupilY.Settled() && e.pupilSize.Settled()
}

func (e *Eye) ID() int                { return e.id }
func (e *Eye) X() float64             { return e.x }
func (e *Eye) Y() float64             { return e.y }
func (e *Eye) Width() float64         { return e.width }
func (e *Eye) Height() float64        { return e.height }
func (e *Eye) IrisRadius() float64    { return e.irisRadius }
func (e *Eye) IrisOffset() float64    { return e.irisOffset }
func (e *Eye) BasePupil() float64     { return e.pupilRadius }
func (e *Eye) Color() Color           { return e.color }
func (e *Eye) Active() bool           { return e.active }
func (e *Eye) Blinking() bool         { return e.blinking }
func (e *Eye) WideOpen() bool         { return e.wideOpen }
func (e *Eye) NeedsUpdate() bool      { return e.needsUpdate }
func (e *Eye) Horizontal() Horizontal { return e.horizontal }
func (e *Eye) Vertical() Vertical     { return e.vertical }

// Aperture returns the current and target eyelid opening.
func (e *Eye) Aperture() (current, target float64) {
	return e.aperture.Current, e.aperture.Target
}

// Pupil returns the current pupil offset from the eye center and its radius.
func (e *Eye) Pupil() (x, y, radius float64) {
	return e.pupilX.Current, e.pupilY.Current, e.pupilSize.Current
}

// PupilTarget returns the pupil offset and radius the eye is easing toward.
func (e *Eye) PupilTarget() (x, y, radius float64) {
	return e.pupilX.Target, e.pupilY.Target, e.pupilSize.Target
}

// Outline returns the eyelid shape for the current aperture.
func (e *Eye) Outline() Outline {
	return Outline{HalfWidth: 0.5 * e.width, Aperture: e.aperture.Current}
}
