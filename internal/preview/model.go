// Package preview shows the tile viewport in a terminal. It drives the same
// viewport.Controller as the browser viewer through terminal-backed surfaces.
package preview

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tilemap.dev/internal/theme"
	"tilemap.dev/internal/viewport"
)

// panStep is how far one key press pans, in screen pixels
const panStep = 4 * cellWidth

type keyMap struct {
	Left, Right, Up, Down key.Binding
	ZoomIn, ZoomOut       key.Binding
	Theme                 key.Binding
	Quit                  key.Binding
}

var keys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan")),
	ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model of the terminal preview
type Model struct {
	ctrl      *viewport.Controller
	switcher  *theme.Switcher
	classes   theme.ClassSet
	surface   *termSurface
	container *gridContainer
	readout   *readout

	width, height int
}

// New creates a preview for the given viewer parameters, starting in light mode
func New(cfg viewport.Config, classes theme.Classes) *Model {
	m := &Model{
		classes:   theme.NewClassSet(),
		surface:   &termSurface{},
		container: newGridContainer(),
		readout:   &readout{},
	}
	m.switcher = theme.NewSwitcher(m.classes, classes)
	m.switcher.Set(theme.Light)
	m.ctrl = viewport.New(cfg, m.surface, m.container, m.readout)
	return m
}

// Run starts the preview and blocks until the user quits
func Run(ctx context.Context, cfg viewport.Config, classes theme.Classes) error {
	p := tea.NewProgram(New(cfg, classes),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Controller exposes the viewport driven by the preview
func (m *Model) Controller() *viewport.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.cols = msg.Width
		m.surface.rows = max(0, msg.Height-2) // status and help lines
		m.ctrl.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			m.ctrl.Pan(panStep, 0)
		case key.Matches(msg, keys.Right):
			m.ctrl.Pan(-panStep, 0)
		case key.Matches(msg, keys.Up):
			m.ctrl.Pan(0, panStep)
		case key.Matches(msg, keys.Down):
			m.ctrl.Pan(0, -panStep)
		case key.Matches(msg, keys.ZoomIn):
			m.zoomAtCenter(1)
		case key.Matches(msg, keys.ZoomOut):
			m.zoomAtCenter(-1)
		case key.Matches(msg, keys.Theme):
			m.switcher.Toggle()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) zoomAtCenter(step int) {
	w, h := m.surface.Size()
	m.ctrl.ZoomToPoint(m.ctrl.State().Zoom+step, w/2, h/2)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	px, py := cellCenter(msg.X, msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ctrl.Wheel(-1, px, py)
	case msg.Button == tea.MouseButtonWheelDown:
		m.ctrl.Wheel(1, px, py)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.ctrl.PointerDown(px, py)
	case msg.Action == tea.MouseActionMotion:
		m.ctrl.PointerMove(px, py)
	case msg.Action == tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
}

type palette struct {
	even, odd, empty, status lipgloss.Style
}

func paletteFor(mode theme.Mode) palette {
	if mode == theme.Dark {
		return palette{
			even:   lipgloss.NewStyle().Background(lipgloss.Color("#1F3B2C")).Foreground(lipgloss.Color("#C8E6C9")),
			odd:    lipgloss.NewStyle().Background(lipgloss.Color("#2E4A3A")).Foreground(lipgloss.Color("#C8E6C9")),
			empty:  lipgloss.NewStyle().Background(lipgloss.Color("#0B0F14")),
			status: lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Bold(true),
		}
	}
	return palette{
		even:   lipgloss.NewStyle().Background(lipgloss.Color("#A5D6A7")).Foreground(lipgloss.Color("#1B5E20")),
		odd:    lipgloss.NewStyle().Background(lipgloss.Color("#81C784")).Foreground(lipgloss.Color("#1B5E20")),
		empty:  lipgloss.NewStyle().Background(lipgloss.Color("#ECEFF1")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#263238")).Bold(true),
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	p := paletteFor(m.switcher.Mode())
	tileSize := float64(m.ctrl.Config().TileSize)

	labels := m.labels()

	var b strings.Builder
	for row := 0; row < m.surface.rows; row++ {
		for col := 0; col < m.surface.cols; col++ {
			px, py := cellCenter(col, row)
			t, ok := m.container.tileAt(px, py, tileSize)
			if !ok {
				b.WriteString(p.empty.Render(" "))
				continue
			}
			ch := " "
			if r, ok := labels[[2]int{col, row}]; ok {
				ch = string(r)
			}
			if (t.Coord.X+t.Coord.Y)%2 == 0 {
				b.WriteString(p.even.Render(ch))
			} else {
				b.WriteString(p.odd.Render(ch))
			}
		}
		b.WriteByte('\n')
	}

	s := m.ctrl.State()
	b.WriteString(p.status.Render(m.readout.text + "  zoom " + strconv.Itoa(s.Zoom) + "  " + m.switcher.Mode().String()))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("←↑↓→ pan · drag pan · +/- or wheel zoom · t theme · q quit"))
	return b.String()
}

// labels places "z/x_y" at the top-left cell of each displayed tile
func (m *Model) labels() map[[2]int]rune {
	out := make(map[[2]int]rune)
	tr := m.container.transform
	for _, t := range m.container.tiles {
		col := int(math.Floor((tr.TranslateX + t.Left*tr.Scale) / cellWidth))
		row := int(math.Floor((tr.TranslateY + t.Top*tr.Scale) / cellHeight))
		label := strconv.Itoa(t.Zoom) + "/" + strconv.Itoa(t.Coord.X) + "_" + strconv.Itoa(t.Coord.Y)
		for i, r := range label {
			c := col + 1 + i
			if c >= 0 && c < m.surface.cols && row >= 0 && row < m.surface.rows {
				out[[2]int{c, row}] = r
			}
		}
	}
	return out
}
