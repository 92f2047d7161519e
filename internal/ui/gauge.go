package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

const (
	gaugeMinWidth = 10
	gaugeMaxWidth = 30
)

// gauge shows the blink chance as a bar that springs toward its value
// instead of jumping on every glance.
type gauge struct {
	bar    progress.Model
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newGauge(fps int) gauge {
	return gauge{
		bar: progress.New(
			progress.WithScaledGradient("#5A56E0", "#EE6FF8"),
			progress.WithoutPercentage(),
			progress.WithWidth(gaugeMinWidth),
		),
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 6.0, 1.0),
	}
}

func (g *gauge) resize(width int) {
	g.bar.Width = min(max(width, gaugeMinWidth), gaugeMaxWidth)
}

// step moves the displayed value one frame toward target, in [0, 1].
func (g *gauge) step(target float64) float64 {
	target = min(max(target, 0), 1)
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, target)
	return g.pos
}

func (g gauge) view() string {
	return g.bar.ViewAs(min(max(g.pos, 0), 1))
}
