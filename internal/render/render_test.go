package render

import (
	"strings"
	"testing"

	"github.com/fathom/blinker/internal/eye"
	"github.com/fathom/blinker/internal/mosaic"
)

var iris = eye.Color{R: 0, G: 153, B: 255}

// stillRand never passes a behavior trial, so eyes only open and settle.
type stillRand struct{}

func (stillRand) Float64() float64 { return 0.999 }
func (stillRand) IntN(int) int     { return 0 }

func newTestCanvas(cols, rows int, p colorProfile) *Canvas {
	c := NewCanvas(cols, rows)
	c.profile = p
	return c
}

// openEye returns a fully open, settled eye of width 100 centered in the
// design space.
func openEye() *eye.Eye {
	e := eye.New(0, 160, 160, 100, iris, nil)
	e.Reset()
	return e
}

func settle(t *testing.T, e *eye.Eye) {
	t.Helper()
	for range 200 {
		if !e.Update() {
			return
		}
	}
	t.Fatal("eye never settled")
}

func TestCanvasSetAndAt(t *testing.T) {
	c := newTestCanvas(4, 2, colorNone)
	if w, h := c.Size(); w != 4 || h != 4 {
		t.Fatalf("expected 4x4 pixels, got %dx%d", w, h)
	}

	c.Set(1, 3, eye.ScleraColor)
	c.Set(-1, 0, eye.ScleraColor)
	c.Set(4, 0, eye.ScleraColor)

	if got := c.At(1, 3); got != eye.ScleraColor {
		t.Errorf("At(1,3) = %v, want sclera", got)
	}
	if got := c.At(9, 9); got != Background {
		t.Errorf("out-of-range At = %v, want background", got)
	}

	c.Clear()
	if got := c.At(1, 3); got != Background {
		t.Errorf("after Clear At(1,3) = %v, want background", got)
	}
}

func TestCanvasStringMono(t *testing.T) {
	c := newTestCanvas(4, 1, colorNone)
	c.Set(0, 0, eye.ScleraColor)
	c.Set(1, 1, eye.ScleraColor)
	c.Set(2, 0, eye.ScleraColor)
	c.Set(2, 1, eye.ScleraColor)

	if got, want := c.String(), "▀▄█ "; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCanvasStringTrueColor(t *testing.T) {
	c := newTestCanvas(2, 2, colorTrueColor)
	c.Set(0, 0, eye.ScleraColor)

	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "\x1b[38;2;252;245;245m\x1b[48;2;0;0;0m▀") {
		t.Errorf("unexpected first cell %q", lines[0])
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line %d not reset: %q", i, line)
		}
		if n := strings.Count(line, "▀"); n != 2 {
			t.Errorf("line %d has %d cells, want 2", i, n)
		}
	}
	// the second cell repeats the background and needs no new foreground
	if n := strings.Count(lines[1], "\x1b[38;2;"); n != 1 {
		t.Errorf("expected one foreground sequence on a uniform line, got %d", n)
	}
}

func TestCanvasEmpty(t *testing.T) {
	if got := newTestCanvas(0, 5, colorTrueColor).String(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestColorSequence(t *testing.T) {
	tests := []struct {
		name    string
		profile colorProfile
		layer   layer
		c       eye.Color
		want    string
	}{
		{"truecolor fg", colorTrueColor, foreground, eye.Color{R: 1, G: 2, B: 3}, "\x1b[38;2;1;2;3m"},
		{"truecolor bg", colorTrueColor, background, eye.Color{R: 1, G: 2, B: 3}, "\x1b[48;2;1;2;3m"},
		{"256 white", colorANSI256, foreground, eye.Color{R: 255, G: 255, B: 255}, "\x1b[38;5;231m"},
		{"16 red bg", colorANSI16, background, eye.Color{R: 210, G: 40, B: 40}, "\x1b[41m"},
		{"none", colorNone, foreground, eye.ScleraColor, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorSequence(tt.profile, tt.layer, tt.c); got != tt.want {
				t.Fatalf("colorSequence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	c := newTestCanvas(80, 20, colorNone)
	v := Fit(c, 320)

	if v.Scale != 0.125 {
		t.Errorf("Scale = %v, want 0.125", v.Scale)
	}
	if v.OffsetX != 20 || v.OffsetY != 0 {
		t.Errorf("offset = (%v, %v), want (20, 0)", v.OffsetX, v.OffsetY)
	}
	if x, y := v.ToPixel(320, 320); x != 60 || y != 40 {
		t.Errorf("ToPixel(320,320) = (%v, %v), want (60, 40)", x, y)
	}
	if x, y := v.ToDesign(60, 40); x != 320 || y != 320 {
		t.Errorf("ToDesign(60,40) = (%v, %v), want (320, 320)", x, y)
	}
}

func TestDrawEye(t *testing.T) {
	c := newTestCanvas(320, 160, colorTrueColor)
	e := openEye()
	DrawEye(c, e, Fit(c, 320))

	tests := []struct {
		name string
		x, y int
		want eye.Color
	}{
		{"pupil at center", 160, 160, eye.PupilColor},
		{"iris", 175, 160, iris},
		{"sclera", 200, 160, eye.ScleraColor},
		{"above the lid", 160, 190, Background},
		{"past the corner", 215, 160, Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.At(tt.x, tt.y); got != tt.want {
				t.Fatalf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawEyeFollowsPupil(t *testing.T) {
	c := newTestCanvas(320, 160, colorTrueColor)
	e := openEye()

	DrawEye(c, e, Fit(c, 320))
	if got := c.At(182, 160); got != eye.ScleraColor {
		t.Fatalf("expected sclera right of the iris, got %v", got)
	}

	e.LookRight()
	settle(t, e)
	c.Clear()
	DrawEye(c, e, Fit(c, 320))
	if got := c.At(182, 160); got != eye.PupilColor {
		t.Fatalf("expected pupil after looking right, got %v", got)
	}
	if got := c.At(145, 160); got != eye.ScleraColor {
		t.Fatalf("expected sclera left of the moved iris, got %v", got)
	}
}

func TestDrawEyeClosed(t *testing.T) {
	c := newTestCanvas(320, 160, colorTrueColor)
	e := eye.New(0, 160, 160, 100, iris, nil)
	DrawEye(c, e, Fit(c, 320))

	w, h := c.Size()
	for y := range h {
		for x := range w {
			if c.At(x, y) != Background {
				t.Fatalf("closed eye painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawMosaic(t *testing.T) {
	m := mosaic.New(mosaic.DefaultConfig(), stillRand{})
	m.Populate([]mosaic.Placement{{X: 160, Y: 160, Width: 100}})
	m.OnGlance(mosaic.Glance{Increment: 1, Total: 1, Consecutive: 1})
	for range 50 {
		m.Tick()
	}

	c := newTestCanvas(320, 160, colorTrueColor)
	c.Set(0, 0, eye.ScleraColor)
	DrawMosaic(c, m)

	if got := c.At(0, 0); got != Background {
		t.Errorf("expected DrawMosaic to clear stale pixels, got %v", got)
	}
	if got := c.At(200, 160); got != eye.ScleraColor {
		t.Errorf("expected the active eye drawn, got %v at (200,160)", got)
	}
}
