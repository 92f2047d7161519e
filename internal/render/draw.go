package render

import (
	"math"

	"github.com/fathom/blinker/internal/eye"
	"github.com/fathom/blinker/internal/mosaic"
)

// linerWidth is the eyeliner thickness inside the lids, in design units.
const linerWidth = 1.0

// Viewport maps design-space coordinates to canvas pixels.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit returns the viewport that centers a square design space of the given
// size on c, as large as fits.
func Fit(c *Canvas, size float64) Viewport {
	w, h := c.Size()
	if size <= 0 {
		return Viewport{Scale: 1}
	}
	s := math.Min(float64(w), float64(h)) / size
	return Viewport{
		Scale:   s,
		OffsetX: (float64(w) - size*s) / 2,
		OffsetY: (float64(h) - size*s) / 2,
	}
}

// ToPixel maps a design-space point to canvas pixel coordinates.
func (v Viewport) ToPixel(x, y float64) (px, py float64) {
	return x*v.Scale + v.OffsetX, y*v.Scale + v.OffsetY
}

// ToDesign maps a canvas pixel coordinate back to design space.
func (v Viewport) ToDesign(px, py float64) (x, y float64) {
	return (px - v.OffsetX) / v.Scale, (py - v.OffsetY) / v.Scale
}

// DrawEye paints e: sclera clipped to the lids, then the iris and pupil
// following the pupil offset, then the eyeliner along the lid edge.
func DrawEye(c *Canvas, e *eye.Eye, v Viewport) {
	o := e.Outline()
	if o.HalfWidth <= 0 || o.Aperture <= 0 || v.Scale <= 0 {
		return
	}

	half := o.Aperture / 2
	x0, y0 := v.ToPixel(e.X()-o.HalfWidth, e.Y()-half)
	x1, y1 := v.ToPixel(e.X()+o.HalfWidth, e.Y()+half)

	pupilX, pupilY, pupilR := e.Pupil()
	irisY := pupilY - e.IrisOffset()
	irisR2 := e.IrisRadius() * e.IrisRadius()
	pupilR2 := pupilR * pupilR

	for py := int(math.Floor(y0)); py <= int(math.Ceil(y1)); py++ {
		for px := int(math.Floor(x0)); px <= int(math.Ceil(x1)); px++ {
			dx, dy := v.ToDesign(float64(px)+0.5, float64(py)+0.5)
			dx -= e.X()
			dy -= e.Y()

			h := o.HalfHeightAt(dx)
			if h <= 0 || math.Abs(dy) > h {
				continue
			}
			if h-math.Abs(dy) < linerWidth {
				c.Set(px, py, eye.EyelidColor)
				continue
			}

			ix, iy := dx-pupilX, dy-irisY
			d2 := ix*ix + iy*iy
			switch {
			case d2 <= pupilR2:
				c.Set(px, py, eye.PupilColor)
			case d2 <= irisR2:
				c.Set(px, py, e.Color())
			default:
				c.Set(px, py, eye.ScleraColor)
			}
		}
	}
}

// DrawMosaic clears c and paints every active eye of m, scaled to fit.
func DrawMosaic(c *Canvas, m *mosaic.Mosaic) {
	c.Clear()
	v := Fit(c, mosaic.DesignSize)
	m.Render(func(e *eye.Eye) {
		DrawEye(c, e, v)
	})
}
