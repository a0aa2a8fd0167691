package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tilemap.dev/internal/theme"
	"tilemap.dev/internal/viewport"
)

func newSizedModel(t *testing.T) *Model {
	t.Helper()
	m := New(viewport.DefaultConfig(), theme.DefaultClasses())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 26})
	return m
}

func TestWindowSizeRenders(t *testing.T) {
	m := newSizedModel(t)

	// 80x24 cells is 640x384 px; zoom 1 tiles span 512 px
	if got := len(m.container.tiles); got != 2 {
		t.Errorf("expected 2 visible tiles, got %d", got)
	}
	view := m.View()
	if !strings.Contains(view, "X: 0, Z: 0") {
		t.Errorf("readout missing from view")
	}
	if !strings.Contains(view, "1") {
		t.Errorf("tile label missing from view")
	}
}

func TestKeysPanAndZoom(t *testing.T) {
	m := newSizedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s := m.ctrl.State(); s.OffsetX != -panStep || s.OffsetY != 0 {
		t.Errorf("pan right: %+v", s)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if z := m.ctrl.State().Zoom; z != 2 {
		t.Errorf("zoom in: got %d", z)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if z := m.ctrl.State().Zoom; z != 0 {
		t.Errorf("zoom out clamps at 0: got %d", z)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newSizedModel(t)
	if m.switcher.Mode() != theme.Light {
		t.Fatalf("expected light start")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.switcher.Mode() != theme.Dark {
		t.Errorf("expected dark after toggle")
	}
	if !strings.Contains(m.View(), "dark") {
		t.Errorf("mode missing from status line")
	}
}

func TestMouseDragAndWheel(t *testing.T) {
	m := newSizedModel(t)

	m.Update(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: 14, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 14, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	if s := m.ctrl.State(); s.OffsetX != 4*cellWidth || s.OffsetY != cellHeight {
		t.Errorf("drag: %+v", s)
	}
	if _, ok := m.ctrl.Drag().(viewport.Idle); !ok {
		t.Errorf("expected idle after release")
	}

	m.Update(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if z := m.ctrl.State().Zoom; z != 2 {
		t.Errorf("wheel up: zoom %d", z)
	}
}

func TestQuit(t *testing.T) {
	m := newSizedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg")
	}
}
