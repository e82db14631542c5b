// Package tui renders the orrery top-down on a Braille canvas inside a
// Bubble Tea program. It drives the same scene core as the GUI, so focus
// and time-scale behavior are identical between frontends.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	canvasWidth     = 72
	canvasHeight    = 24
	tickRate        = time.Second / 30
	historyCapacity = 120
)

type TickMsg time.Time

type Model struct {
	scene      *scene.Scene
	canvas     *Canvas
	running    bool
	showOrbits bool
	focusIdx   int // index into PlanetHandles, -1 when free
	tsHistory  []float64
}

func NewModel(cfg *config.Config) Model {
	s := scene.Build(cfg.Planets())
	m := Model{
		scene:      s,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		running:    true,
		showOrbits: cfg.ShowOrbits,
		focusIdx:   -1,
		tsHistory:  make([]float64, 0, historyCapacity),
	}
	if cfg.Focus != "" {
		if err := s.FocusByName(cfg.Focus); err == nil {
			for i, h := range s.PlanetHandles() {
				if h == s.Focused() {
					m.focusIdx = i
				}
			}
		}
	}
	return m
}

// Run starts the terminal frontend and blocks until quit.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "o":
			m.showOrbits = !m.showOrbits
		case "tab":
			m.cycleFocus(1)
		case "shift+tab":
			m.cycleFocus(-1)
		case "esc", "backspace":
			m.scene.Blur()
			m.focusIdx = -1
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.scene.Step(float64(tickRate) / float64(time.Second))
		}
		m.tsHistory = append(m.tsHistory, m.scene.TimeScale())
		if len(m.tsHistory) > historyCapacity {
			m.tsHistory = m.tsHistory[1:]
		}
		return m, tick()
	}
	return m, nil
}

// cycleFocus steps the selection through the planet list; stepping past
// either end returns to the free state.
func (m *Model) cycleFocus(dir int) {
	n := len(m.scene.PlanetHandles())
	if n == 0 {
		return
	}
	m.focusIdx += dir
	if m.focusIdx >= n || m.focusIdx < -1 {
		m.focusIdx = -1
	}
	if m.focusIdx == -1 {
		m.scene.Blur()
		return
	}
	// All planet handles are pickable, so Focus cannot fail here.
	_ = m.scene.Focus(m.scene.PlanetHandles()[m.focusIdx])
}

func (m Model) View() string {
	m.drawScene()

	var stats string
	stats += headerStyle.Render("orrery") + "\n\n"
	stats += labelStyle.Render("timescale") + valueStyle.Render(fmt.Sprintf("%.3f", m.scene.TimeScale())) + "\n"
	stats += labelStyle.Render("elapsed") + valueStyle.Render(fmt.Sprintf("%.1fs", m.scene.Elapsed())) + "\n"

	if name := m.scene.FocusedName(); name != "" {
		stats += labelStyle.Render("focus") + focusStyle.Render(name) + "\n"
		pos := m.scene.LookTarget()
		stats += labelStyle.Render("target") + valueStyle.Render(fmt.Sprintf("%.1f %.1f %.1f", pos.X, pos.Y, pos.Z)) + "\n"
	} else {
		stats += labelStyle.Render("focus") + valueStyle.Render("-") + "\n"
	}
	if !m.running {
		stats += "\n" + focusStyle.Render("PAUSED") + "\n"
	}

	if len(m.tsHistory) >= 2 {
		graph := asciigraph.Plot(m.tsHistory,
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("timescale"),
		)
		stats += "\n" + graphStyle.Render(graph) + "\n"
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)
	help := helpStyle.Render("tab: focus next • esc: back • space: pause • o: orbits • q: quit")
	return view + "\n" + help
}

// drawScene projects the system top-down onto the canvas: world X maps
// to dot x, world Z to dot y.
func (m Model) drawScene() {
	m.canvas.Clear()

	dotsW, dotsH := canvasWidth*2, canvasHeight*4
	cx, cy := dotsW/2, dotsH/2

	maxDist := 1.0
	for _, p := range m.scene.Planets {
		if p.Distance > maxDist {
			maxDist = p.Distance
		}
	}
	sc := float64(dotsH/2-2) / maxDist

	m.canvas.FillCircle(cx, cy, 2)

	for i, h := range m.scene.PlanetHandles() {
		p := m.scene.Planets[i]
		if m.showOrbits {
			m.canvas.DrawCircle(cx, cy, int(p.Distance*sc))
		}
		pos := m.scene.Graph.WorldPosition(h)
		px, py := cx+int(pos.X*sc), cy+int(pos.Z*sc)
		r := int(p.Radius * sc * 0.4)
		if r < 1 {
			r = 1
		}
		m.canvas.FillCircle(px, py, r)

		if h == m.scene.Focused() {
			m.canvas.DrawCircle(px, py, r+3)
		}

		// Moons as single dots around their planet.
		for _, c := range m.scene.Graph.Node(h).Children {
			orbit := m.scene.Graph.Node(c)
			for _, mc := range orbit.Children {
				mp := m.scene.Graph.WorldPosition(mc)
				m.canvas.Set(cx+int(mp.X*sc), cy+int(mp.Z*sc))
			}
		}
	}
}
