package eye

// Outline is the eyelid shape: two quadratic curves joining (-HalfWidth, 0)
// and (HalfWidth, 0), with control points at (0, -Aperture) and (0, Aperture).
// It is derived from the current aperture on demand and never stored.
type Outline struct {
	HalfWidth float64
	Aperture  float64
}

// HalfHeightAt returns the distance from the midline to either lid at
// horizontal offset x. The curve peaks at Aperture/2 over the center.
func (o Outline) HalfHeightAt(x float64) float64 {
	if o.HalfWidth <= 0 || x < -o.HalfWidth || x > o.HalfWidth {
		return 0
	}
	s := x / o.HalfWidth
	return 0.5 * o.Aperture * (1 - s*s)
}

// Contains reports whether the point (x, y), relative to the eye center,
// lies inside the lids.
func (o Outline) Contains(x, y float64) bool {
	h := o.HalfHeightAt(x)
	if h <= 0 {
		return false
	}
	return y >= -h && y <= h
}

// Bulge returns the midline control offset, equal to the current aperture.
func (o Outline) Bulge() float64 {
	return o.Aperture
}
