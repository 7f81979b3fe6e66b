package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jpapex/internal/mapview"
	"github.com/jask/jpapex/internal/predator"
)

type detailFocus int

const (
	focusImage detailFocus = iota
	focusMap
	focusLink
	focusCount
)

const embeddedMapHeight = 7

// detailScreen renders one record. The camera belongs to this screen, so
// zooming the embedded map never affects the list that opened it.
type detailScreen struct {
	predator predator.ApexPredator
	camera   mapview.Camera
	closeUp  mapview.Preset
	link     *url.URL
	linkErr  error
	focus    detailFocus
	viewport viewport.Model
	width    int
	opener   Opener
	styles   styles
	keys     keyMap
}

func newDetailScreen(p predator.ApexPredator, cam mapview.Camera, closeUp mapview.Preset, opener Opener, st styles, keys keyMap) *detailScreen {
	d := &detailScreen{
		predator: p,
		camera:   cam,
		closeUp:  closeUp,
		opener:   opener,
		styles:   st,
		keys:     keys,
		viewport: viewport.New(80, 20),
		width:    80,
	}
	d.link, d.linkErr = p.LinkURL()
	d.refresh()
	return d
}

func (d *detailScreen) name() string { return "detail:" + d.predator.Name }

func (d *detailScreen) capturesText() bool { return false }

func (d *detailScreen) resize(width, height int) {
	d.width = width
	d.viewport.Width = width
	d.viewport.Height = height
	d.refresh()
}

func (d *detailScreen) update(msg tea.KeyMsg, nav navigator) tea.Cmd {
	switch {
	case key.Matches(msg, d.keys.Back):
		nav.pop()
	case key.Matches(msg, d.keys.Next):
		d.focus = (d.focus + 1) % focusCount
		d.refresh()
	case key.Matches(msg, d.keys.Select):
		return d.activate(d.focus, nav)
	case key.Matches(msg, d.keys.Image):
		return d.activate(focusImage, nav)
	case key.Matches(msg, d.keys.Map):
		return d.activate(focusMap, nav)
	case key.Matches(msg, d.keys.Open):
		return d.activate(focusLink, nav)
	case key.Matches(msg, d.keys.ZoomIn):
		d.camera = d.camera.ZoomIn()
		d.refresh()
	case key.Matches(msg, d.keys.ZoomOut):
		d.camera = d.camera.ZoomOut()
		d.refresh()
	default:
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (d *detailScreen) relay(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

func (d *detailScreen) activate(f detailFocus, nav navigator) tea.Cmd {
	d.focus = f
	d.refresh()
	switch f {
	case focusImage:
		nav.push(newImageScreen(d.predator, d.styles, d.keys))
	case focusMap:
		nav.push(newMapScreen(d.predator, d.closeUp.At(d.predator.Location), d.styles, d.keys))
	case focusLink:
		if d.linkErr != nil {
			nav.setStatus("link unavailable: " + d.linkErr.Error())
			return nil
		}
		if d.opener == nil {
			nav.setStatus(d.link.String())
			return nil
		}
		return openLinkCmd(d.opener, d.link.String())
	}
	return nil
}

func (d *detailScreen) helpKeys() []key.Binding {
	return []key.Binding{d.keys.Back, d.keys.Next, d.keys.Select, d.keys.ZoomIn, d.keys.ZoomOut}
}

func (d *detailScreen) view(width, height int) string {
	return d.viewport.View()
}

// refresh rebuilds the scrollable content.
func (d *detailScreen) refresh() {
	d.viewport.SetContent(d.content(d.width))
}

func (d *detailScreen) content(width int) string {
	st := d.styles
	p := d.predator
	var b strings.Builder

	b.WriteString(renderBanner(p, width, st))
	b.WriteString("\n")
	image := renderAsset(p.Image, true, st)
	if d.focus == focusImage {
		image = st.mapBoxOn.Render(image)
	} else {
		image = st.mapBox.Render(image)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, image))
	b.WriteString("\n")

	b.WriteString(st.title.Render(p.Name) + "  " + st.badge(p.Type))
	b.WriteString("\n\n")

	b.WriteString(d.embeddedMap(width))
	b.WriteString("\n\n")

	b.WriteString(st.heading.Render("Appears In:"))
	for _, m := range p.Movies {
		b.WriteString("\n•" + m)
	}
	b.WriteString("\n\n")

	b.WriteString(st.heading.Render("Movie Moments"))
	for _, g := range p.ScenesByMovie() {
		b.WriteString("\n" + st.title.Render(g.Movie))
		for _, s := range g.Scenes {
			b.WriteString("\n" + lipgloss.NewStyle().Width(max(width-2, 20)).Render(s.SceneDescription))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.subtle.Render("Read More:"))
	b.WriteString("\n")
	b.WriteString(d.renderLink())
	return b.String()
}

func (d *detailScreen) embeddedMap(width int) string {
	st := d.styles
	inner := max(width-2, 10)
	lines := mapLines(d.camera, d.predator.Location, "", inner, embeddedMapHeight, st)
	if len(lines) > 0 {
		lines[0] = overlay(lines[0], " Current Location ", 0)
		mid := len(lines) / 2
		lines[mid] = overlay(lines[mid], ">", inner-1)
	}
	box := st.mapBox
	if d.focus == focusMap {
		box = st.mapBoxOn
	}
	caption := st.subtle.Render(fmt.Sprintf("%s · %s", d.predator.Location, d.camera))
	return box.Render(strings.Join(lines, "\n")) + "\n" + caption
}

func (d *detailScreen) renderLink() string {
	if d.linkErr != nil {
		return d.styles.errorText.Render(d.predator.Link + " (unavailable)")
	}
	text := d.styles.link.Render(d.link.String())
	if d.focus == focusLink {
		text = d.styles.selected.Render("▶ ") + text
	}
	return text
}

// overlay writes s over line starting at cell col. The line keeps its
// width; styled text on either side survives.
func overlay(line, s string, col int) string {
	width := ansi.StringWidth(line)
	if col < 0 || col >= width {
		return line
	}
	s = ansi.Truncate(s, width-col, "")
	left := ansi.Truncate(line, col, "")
	if w := ansi.StringWidth(left); w < col {
		left += strings.Repeat(" ", col-w)
	}
	pos := col + ansi.StringWidth(s)
	right := ansi.TruncateLeft(line, pos, "")
	if gap := width - pos - ansi.StringWidth(right); gap > 0 {
		right = strings.Repeat(" ", gap) + right
	}
	return left + s + right
}
