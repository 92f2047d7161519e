package render

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/fathom/blinker/internal/eye"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

type layer uint8

const (
	foreground layer = iota
	background
)

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case strings.Contains(term, "256color"):
			profile = colorANSI256
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI16
		}
	})
	return profile
}

var ansi16 = []eye.Color{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

const unset = ^uint32(0)

func colorKey(c eye.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ansiState tracks the colors last written so runs of equal cells share one
// escape sequence.
type ansiState struct {
	profile colorProfile
	fg      uint32
	bg      uint32
}

func newANSIState(p colorProfile) ansiState {
	return ansiState{profile: p, fg: unset, bg: unset}
}

func (s *ansiState) set(sb *strings.Builder, fg, bg eye.Color) {
	if s.profile == colorNone {
		return
	}
	if k := colorKey(fg); k != s.fg {
		sb.WriteString(colorSequence(s.profile, foreground, fg))
		s.fg = k
	}
	if k := colorKey(bg); k != s.bg {
		sb.WriteString(colorSequence(s.profile, background, bg))
		s.bg = k
	}
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || (s.fg == unset && s.bg == unset) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.fg, s.bg = unset, unset
}

func colorSequence(profile colorProfile, l layer, c eye.Color) string {
	key := uint32(profile)<<25 | uint32(l)<<24 | colorKey(c)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	base := 38
	if l == background {
		base = 48
	}

	var seq string
	switch profile {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
	case colorANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		idx := 16 + 36*r + 6*g + b
		seq = fmt.Sprintf("\x1b[%d;5;%dm", base, idx)
	case colorANSI16:
		seq = fmt.Sprintf("\x1b[%dm", base-8+nearestANSI16(c))
	default:
		seq = ""
	}

	seqCache.Store(key, seq)
	return seq
}

func nearestANSI16(c eye.Color) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range ansi16 {
		dr := float64(c.R) - float64(p.R)
		dg := float64(c.G) - float64(p.G)
		db := float64(c.B) - float64(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
