// Package render rasterizes eyes onto a terminal pixel canvas. Each cell
// shows two vertically stacked pixels using the upper half block, so pixels
// come out roughly square.
package render

import (
	"strings"

	"github.com/fathom/blinker/internal/eye"
)

// Background is the face color behind the eyes.
var Background = eye.Color{}

// Canvas is a grid of RGB pixels, two per terminal row.
type Canvas struct {
	cols    int
	rows    int
	px      []eye.Color
	profile colorProfile
}

// NewCanvas returns a cleared canvas covering cols by rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{profile: currentColorProfile()}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell dimensions and clears the canvas.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	n := c.cols * c.rows * 2
	if cap(c.px) < n {
		c.px = make([]eye.Color, n)
	} else {
		c.px = c.px[:n]
	}
	c.Clear()
}

// Clear fills the canvas with the background.
func (c *Canvas) Clear() {
	for i := range c.px {
		c.px[i] = Background
	}
}

// Size returns the pixel dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.cols, c.rows * 2
}

// Set paints one pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col eye.Color) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.px[y*w+x] = col
}

// At returns the pixel at (x, y), or the background when out of range.
func (c *Canvas) At(x, y int) eye.Color {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Background
	}
	return c.px[y*w+x]
}

// String renders the canvas as rows of half blocks with ANSI colors. Without
// color support, lit pixels become block glyphs.
func (c *Canvas) String() string {
	if c.cols == 0 || c.rows == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(c.cols * c.rows * 4)
	state := newANSIState(c.profile)
	for row := range c.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range c.cols {
			top := c.At(col, 2*row)
			bottom := c.At(col, 2*row+1)
			if c.profile == colorNone {
				sb.WriteRune(monoGlyph(top != Background, bottom != Background))
				continue
			}
			state.set(&sb, top, bottom)
			sb.WriteRune('▀')
		}
		state.reset(&sb)
	}
	return sb.String()
}

func monoGlyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
