package mosaic

// DesignSize is the side of the square design space eye placements use.
const DesignSize = 320

// Placement positions one eye in design space.
type Placement struct {
	X     float64
	Y     float64
	Width float64
}

// ClassicLayout is the twenty-eye arrangement the face ships with. One slot
// has zero width and never shows.
func ClassicLayout() []Placement {
	return []Placement{
		{X: 39, Y: 21, Width: 49},
		{X: 39, Y: 73, Width: 49},
		{X: 82, Y: 45, Width: 49},
		{X: 158, Y: 45, Width: 72},
		{X: 110, Y: 145, Width: 0},
		{X: 218, Y: 21, Width: 49},
		{X: 267, Y: 45, Width: 49},
		{X: 218, Y: 73, Width: 49},
		{X: 54, Y: 138, Width: 97},
		{X: 139, Y: 155, Width: 49},
		{X: 106, Y: 195, Width: 72},
		{X: 39, Y: 212, Width: 49},
		{X: 82, Y: 240, Width: 49},
		{X: 39, Y: 265, Width: 49},
		{X: 106, Y: 285, Width: 72},
		{X: 201, Y: 195, Width: 97},
		{X: 282, Y: 195, Width: 49},
		{X: 253, Y: 253, Width: 72},
		{X: 185, Y: 269, Width: 49},
		{X: 228, Y: 298, Width: 49},
	}
}

// GridLayout spreads cols x rows equal eyes across the design space.
func GridLayout(cols, rows int) []Placement {
	if cols < 1 || rows < 1 {
		return nil
	}
	cellW := float64(DesignSize) / float64(cols)
	cellH := float64(DesignSize) / float64(rows)
	width := 0.8 * min(cellW, 2*cellH)

	out := make([]Placement, 0, cols*rows)
	for r := range rows {
		for c := range cols {
			out = append(out, Placement{
				X:     (float64(c) + 0.5) * cellW,
				Y:     (float64(r) + 0.5) * cellH,
				Width: width,
			})
		}
	}
	return out
}

// Layout returns the named layout, or false if the name is unknown.
func Layout(name string) ([]Placement, bool) {
	switch name {
	case "", "classic":
		return ClassicLayout(), true
	case "grid":
		return GridLayout(5, 4), true
	}
	return nil, false
}

// Populate adds one eye per placement, in order.
func (m *Mosaic) Populate(layout []Placement) {
	for _, p := range layout {
		m.AddEye(p.X, p.Y, p.Width)
	}
}
