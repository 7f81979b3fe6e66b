package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jpapex/internal/mapview"
	"github.com/jask/jpapex/internal/predator"
)

const rotateStep = 15.0

// mapScreen is the full-screen map opened from the detail screen.
type mapScreen struct {
	predator predator.ApexPredator
	camera   mapview.Camera
	width    int
	height   int
	styles   styles
	keys     keyMap
}

func newMapScreen(p predator.ApexPredator, cam mapview.Camera, st styles, keys keyMap) *mapScreen {
	return &mapScreen{predator: p, camera: cam, styles: st, keys: keys, width: 80, height: 20}
}

func (m *mapScreen) name() string { return "map:" + m.predator.Name }

func (m *mapScreen) capturesText() bool { return false }

func (m *mapScreen) resize(width, height int) {
	m.width, m.height = width, height
}

func (m *mapScreen) update(msg tea.KeyMsg, nav navigator) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		nav.pop()
	case key.Matches(msg, m.keys.ZoomIn):
		m.camera = m.camera.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.camera = m.camera.ZoomOut()
	case key.Matches(msg, m.keys.Left):
		m.camera = m.camera.Rotate(-rotateStep)
	case key.Matches(msg, m.keys.Right):
		m.camera = m.camera.Rotate(rotateStep)
	case key.Matches(msg, m.keys.Up):
		m.camera = m.camera.Tilt(5)
	case key.Matches(msg, m.keys.Down):
		m.camera = m.camera.Tilt(-5)
	}
	return nil
}

func (m *mapScreen) relay(tea.Msg) tea.Cmd { return nil }

func (m *mapScreen) helpKeys() []key.Binding {
	return []key.Binding{m.keys.Back, m.keys.ZoomIn, m.keys.ZoomOut, m.keys.Left,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "tilt"))}
}

func (m *mapScreen) view(width, height int) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.predator.Name))
	b.WriteString("  ")
	b.WriteString(m.styles.subtle.Render(m.camera.String()))
	b.WriteString("\n")
	lines := mapLines(m.camera, m.predator.Location, m.predator.Name, max(width-2, 10), max(height-3, 3), m.styles)
	b.WriteString(m.styles.mapBox.Render(strings.Join(lines, "\n")))
	return b.String()
}

const pinGlyph = '▼'

// mapLines renders the camera view with a single pin at c drawn in the
// pin color.
func mapLines(cam mapview.Camera, c predator.Coordinate, label string, width, height int, st styles) []string {
	pin := mapview.Pin{Coordinate: c, Label: label, Glyph: pinGlyph}
	lines := strings.Split(mapview.Render(cam, []mapview.Pin{pin}, width, height), "\n")
	styled := st.pin.Render(string(pinGlyph))
	for i, l := range lines {
		lines[i] = strings.Replace(l, string(pinGlyph), styled, 1)
	}
	return lines
}
