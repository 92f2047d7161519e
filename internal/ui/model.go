package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fathom/blinker/internal/face"
	"github.com/fathom/blinker/internal/render"
	"github.com/fathom/blinker/internal/util"
)

// hudRows is the space below the eyes: the status line and the help line.
const hudRows = 2

// Options configures the watch face model.
type Options struct {
	// Interval is the frame period while interactive.
	Interval time.Duration

	ShowGlanceCounter bool

	// Now returns the wall clock; tests pin it.
	Now func() time.Time
}

// Model is the Bubbletea model for the watch face.
type Model struct {
	face        *face.Face
	canvas      *render.Canvas
	gauge       gauge
	interval    time.Duration
	now         func() time.Time
	showCounter bool

	ambient  bool
	gen      int       // bumped on every ambient switch
	lastOn   time.Time // when the current glance began
	clock    time.Time
	width    int
	height   int
	quitting bool
}

// New creates a watch face model over f. The screen is considered on.
func New(f *face.Face, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second / 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now()
	return Model{
		face:        f,
		canvas:      render.NewCanvas(0, 0),
		gauge:       newGauge(int(time.Second / opts.Interval)),
		interval:    opts.Interval,
		now:         opts.Now,
		showCounter: opts.ShowGlanceCounter,
		lastOn:      now,
		clock:       now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval, m.gen), tea.SetWindowTitle("blinker"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if isGlance(msg) {
			if m.ambient {
				return m, nil
			}
			// The screen went dark right after the previous glance began.
			now := m.now()
			m.face.Glance(m.lastOn, now)
			m.lastOn = now
			m.clock = now
			return m, nil
		}
		switch msg.String() {
		case "a":
			return m.toggleAmbient()
		case "r":
			m.face.Reset()
			return m, nil
		}
		return m, nil

	case frameMsg:
		if msg.gen != m.gen || m.ambient {
			return m, nil
		}
		m.clock = msg.at
		m.face.Tick()
		mo := m.face.Mosaic()
		m.gauge.step(blinkLevel(mo.BlinkChance(), mo.Len(), mo.Config().BlinkRatio))
		render.DrawMosaic(m.canvas, mo)
		return m, frameCmd(m.interval, m.gen)

	case clockMsg:
		if msg.gen != m.gen || !m.ambient {
			return m, nil
		}
		m.clock = msg.at
		return m, clockCmd(m.gen)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(msg.Width, max(msg.Height-hudRows, 0))
		m.gauge.resize(msg.Width / 4)
		render.DrawMosaic(m.canvas, m.face.Mosaic())
		return m, nil
	}

	return m, nil
}

// toggleAmbient turns the screen off into ambient mode or back on. Leaving
// ambient is a glance.
func (m Model) toggleAmbient() (tea.Model, tea.Cmd) {
	now := m.now()
	m.clock = now
	m.gen++
	if m.ambient {
		m.ambient = false
		m.face.ScreenOn(now)
		m.lastOn = now
		return m, frameCmd(m.interval, m.gen)
	}
	m.ambient = true
	m.face.ScreenOff(now)
	return m, clockCmd(m.gen)
}

// blinkLevel scales the blink chance to [0, 1], where 1 is the chance with
// every eye on stage.
func blinkLevel(chance float64, eyes int, ratio float64) float64 {
	full := float64(eyes) * ratio
	if full <= 0 {
		return 0
	}
	return min(max(chance/full, 0), 1)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ambient {
		return m.ambientView()
	}

	w := m.width
	if w < 30 {
		w = 50
	}

	left := clockStyle.Render(util.FormatClock(m.clock))
	if m.showCounter {
		left += "  " + counterStyle.Render(glanceLabel(m.face.Glances()))
	}
	if m.face.Mosaic().WideOpen() {
		left += "  " + statusStyle.Render("wide open")
	}
	right := statusStyle.Render("blink ") + m.gauge.view()
	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 2
	statusLine := " " + left + strings.Repeat(" ", max(gap, 2)) + right

	var b strings.Builder
	if eyes := m.canvas.String(); eyes != "" {
		b.WriteString(eyes)
		b.WriteString("\n")
	}
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(" " + helpStyle.Render(helpText(false)))
	return b.String()
}

func (m Model) ambientView() string {
	lines := []string{ambientClockStyle.Render(util.FormatClock(m.clock))}
	if m.showCounter {
		lines = append(lines, counterStyle.Render(fmt.Sprint(m.face.Glances())))
	}
	lines = append(lines, "", helpStyle.Render(helpText(true)))
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func glanceLabel(n int) string {
	if n == 1 {
		return "1 glance"
	}
	return fmt.Sprintf("%d glances", n)
}

// Ambient reports whether the face is in ambient mode.
func (m Model) Ambient() bool { return m.ambient }
