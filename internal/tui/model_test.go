package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/scene"
)

func TestTickAdvancesScene(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	before := m.scene.Elapsed()
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	if m.scene.Elapsed() <= before {
		t.Error("tick should advance the scene")
	}
	if cmd == nil {
		t.Error("tick should reschedule itself")
	}
}

func TestPauseStopsScene(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = next.(Model)
	if m.running {
		t.Fatal("space should pause")
	}

	before := m.scene.Elapsed()
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.scene.Elapsed() != before {
		t.Error("paused tick must not advance the scene")
	}
}

func TestFocusCycling(t *testing.T) {
	m := NewModel(config.DefaultConfig())

	if m.scene.Focused() != scene.None {
		t.Fatal("model should start free")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.scene.FocusedName() != "Mercury" {
		t.Errorf("first tab should focus Mercury, got %q", m.scene.FocusedName())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.scene.FocusedName() != "Venus" {
		t.Errorf("second tab should focus Venus, got %q", m.scene.FocusedName())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(Model)
	if m.scene.FocusedName() != "" {
		t.Error("esc should clear the focus")
	}

	// Cycling past the last planet wraps back to free.
	for i := 0; i < len(m.scene.Planets)+1; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model)
	}
	if m.scene.Focused() != scene.None {
		t.Error("cycling past the end should return to free")
	}
}

func TestViewRendersHUD(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Focus = "Earth"
	m := NewModel(cfg)

	view := m.View()
	if !strings.Contains(view, "orrery") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "Earth") {
		t.Error("view should name the focused body")
	}
}

func TestCanvasSetAndLine(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set should light a dot")
	}

	c.Clear()
	c.DrawLine(0, 0, 19, 19)
	lit := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawLine should light cells")
	}

	// Out-of-bounds plotting is a no-op, not a panic.
	c.Set(-1, -1)
	c.Set(1000, 1000)
	c.DrawCircle(0, 0, 30)
}
