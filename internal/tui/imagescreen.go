package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jpapex/internal/predator"
)

// imageScreen shows a predator's image on its own, mirrored by default.
type imageScreen struct {
	predator predator.ApexPredator
	mirrored bool
	styles   styles
	keys     keyMap
}

func newImageScreen(p predator.ApexPredator, st styles, keys keyMap) *imageScreen {
	return &imageScreen{predator: p, mirrored: true, styles: st, keys: keys}
}

func (s *imageScreen) name() string { return "image:" + s.predator.Image }

func (s *imageScreen) capturesText() bool { return false }

func (s *imageScreen) resize(width, height int) {}

func (s *imageScreen) update(msg tea.KeyMsg, nav navigator) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		nav.pop()
	case key.Matches(msg, s.keys.Mirror):
		s.mirrored = !s.mirrored
	}
	return nil
}

func (s *imageScreen) relay(tea.Msg) tea.Cmd { return nil }

func (s *imageScreen) helpKeys() []key.Binding {
	return []key.Binding{s.keys.Back, s.keys.Mirror}
}

func (s *imageScreen) view(width, height int) string {
	art := renderAsset(s.predator.Image, s.mirrored, s.styles)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, art)
}
