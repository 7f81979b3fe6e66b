package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jpapex/internal/predator"
)

// Bundled images are not drawable in a terminal, so assets render as a
// silhouette captioned with the asset name.
var silhouette = []string{
	`               __  `,
	`              / _) `,
	`     _.----._/ /   `,
	`    /         /    `,
	` __/ (  | (  |     `,
	`/__.-'|_|--|_|     `,
}

var mirrorRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'`': '\'', '\'': '`',
}

// mirror flips lines horizontally, padding them to a common cell width first.
func mirror(lines []string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		rs := []rune(l + strings.Repeat(" ", width-ansi.StringWidth(l)))
		flipped := make([]rune, len(rs))
		for j, r := range rs {
			if m, ok := mirrorRunes[r]; ok {
				r = m
			}
			flipped[len(rs)-1-j] = r
		}
		out[i] = string(flipped)
	}
	return out
}

func renderAsset(name string, mirrored bool, st styles) string {
	art := silhouette
	if mirrored {
		art = mirror(art)
	}
	body := strings.Join(art, "\n") + "\n" + st.subtle.Render(name)
	return lipgloss.NewStyle().Foreground(st.pal.text).Render(body)
}

// renderBanner draws the type background with a gradient fading to the
// base color along its bottom fifth.
func renderBanner(p predator.ApexPredator, width int, st styles) string {
	if width <= 0 {
		return ""
	}
	t := p.Type
	const rows = 5
	bg := lipgloss.Color(t.Display().Background)
	fill := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(t.Display().Color)).Width(width)
	lines := make([]string, 0, rows)
	for r := 0; r < rows-1; r++ {
		text := ""
		if r == rows/2 {
			text = lipgloss.PlaceHorizontal(width, lipgloss.Center, p.TypeImage())
		}
		lines = append(lines, fill.Render(text))
	}
	fade := lipgloss.NewStyle().Foreground(st.pal.crust).Background(bg)
	lines = append(lines, fade.Render(strings.Repeat("▄", width)))
	return strings.Join(lines, "\n")
}
