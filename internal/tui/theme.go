package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jpapex/internal/predator"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	text     lipgloss.Color
	subtext  lipgloss.Color
	overlay  lipgloss.Color
	surface  lipgloss.Color
	base     lipgloss.Color
	crust    lipgloss.Color
	accent   lipgloss.Color
	focus    lipgloss.Color
	link     lipgloss.Color
	errorCol lipgloss.Color
	pin      lipgloss.Color
}

var mocha = palette{
	text:     "#cdd6f4",
	subtext:  "#a6adc8",
	overlay:  "#6c7086",
	surface:  "#313244",
	base:     "#1e1e2e",
	crust:    "#11111b",
	accent:   "#f5c2e7",
	focus:    "#b4befe",
	link:     "#89b4fa",
	errorCol: "#f38ba8",
	pin:      "#f38ba8",
}

var latte = palette{
	text:     "#4c4f69",
	subtext:  "#6c6f85",
	overlay:  "#9ca0b0",
	surface:  "#ccd0da",
	base:     "#eff1f5",
	crust:    "#dce0e8",
	accent:   "#ea76cb",
	focus:    "#7287fd",
	link:     "#1e66f5",
	errorCol: "#d20f39",
	pin:      "#d20f39",
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

type styles struct {
	pal       palette
	title     lipgloss.Style
	heading   lipgloss.Style
	subtle    lipgloss.Style
	selected  lipgloss.Style
	row       lipgloss.Style
	pill      lipgloss.Style
	pillOn    lipgloss.Style
	status    lipgloss.Style
	errorText lipgloss.Style
	link      lipgloss.Style
	mapBox    lipgloss.Style
	mapBoxOn  lipgloss.Style
	modal     lipgloss.Style
	pin       lipgloss.Style
}

func newStyles(theme string) styles {
	p := mocha
	if theme == "light" {
		p = latte
	}
	return styles{
		pal:       p,
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.text),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		subtle:    lipgloss.NewStyle().Foreground(p.overlay),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(p.focus),
		row:       lipgloss.NewStyle().Foreground(p.text),
		pill:      lipgloss.NewStyle().Foreground(p.subtext).Background(p.surface).Padding(0, 1),
		pillOn:    lipgloss.NewStyle().Foreground(p.base).Background(p.focus).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(p.subtext),
		errorText: lipgloss.NewStyle().Foreground(p.errorCol),
		link:      lipgloss.NewStyle().Foreground(p.link).Underline(true),
		mapBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.overlay),
		mapBoxOn:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.focus),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		pin:       lipgloss.NewStyle().Foreground(p.pin).Bold(true),
	}
}

// badge renders a type as a capsule in its display colors.
func (s styles) badge(t predator.Type) string {
	d := t.Display()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.Color)).
		Background(lipgloss.Color(d.Background)).
		Bold(true).
		Padding(0, 1).
		Render(d.Label)
}
