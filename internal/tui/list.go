package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jpapex/internal/mapview"
	"github.com/jask/jpapex/internal/predator"
)

const (
	iconFilterAll   = "slider.horizontal.3"
	iconSortCatalog = "textformat"
	iconSortAlpha   = "film"
)

// listScreen owns the search, sort and filter state. Every setter ends in
// recompute, so visible always reflects query.
type listScreen struct {
	catalog  *predator.Catalog
	query    predator.Query
	visible  []predator.ApexPredator
	cursor   int
	offset   int
	height   int
	width    int
	search   textinput.Model
	focused  bool
	picker   *typePicker
	overview mapview.Preset
	closeUp  mapview.Preset
	opener   Opener
	styles   styles
	keys     keyMap
}

func newListScreen(cat *predator.Catalog, st styles, keys keyMap, overview, closeUp mapview.Preset, opener Opener) *listScreen {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	l := &listScreen{
		catalog:  cat,
		query:    predator.DefaultQuery(),
		search:   ti,
		overview: overview,
		closeUp:  closeUp,
		opener:   opener,
		styles:   st,
		keys:     keys,
		height:   20,
		width:    80,
	}
	l.recompute()
	return l
}

func (l *listScreen) name() string { return "list" }

func (l *listScreen) capturesText() bool { return l.focused }

func (l *listScreen) resize(width, height int) {
	l.width, l.height = width, height
	l.search.Width = max(width-4, 10)
	l.clampOffset()
}

// setSearchText, toggleAlphabetical and selectType are the only writers of query.
func (l *listScreen) setSearchText(text string) {
	if text == l.query.SearchText {
		return
	}
	l.query.SearchText = text
	l.recompute()
}

func (l *listScreen) toggleAlphabetical() {
	l.query.Alphabetical = !l.query.Alphabetical
	l.recompute()
}

func (l *listScreen) selectType(t predator.Type) {
	l.query.Selection = t
	l.recompute()
}

// recompute derives visible from query and keeps the cursor on the same
// record when it is still visible.
func (l *listScreen) recompute() {
	var keep string
	if l.cursor < len(l.visible) {
		keep = l.visible[l.cursor].ID
	}
	l.visible = l.catalog.View(l.query)
	l.cursor = 0
	for i, p := range l.visible {
		if p.ID == keep {
			l.cursor = i
			break
		}
	}
	l.clampOffset()
}

func (l *listScreen) clampOffset() {
	rows := l.rowsVisible()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	l.offset = max(0, min(l.offset, max(len(l.visible)-rows, 0)))
}

func (l *listScreen) rowsVisible() int {
	return max(l.height-4, 1)
}

// selected returns the record under the cursor.
func (l *listScreen) selected() (predator.ApexPredator, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return predator.ApexPredator{}, false
	}
	return l.visible[l.cursor], true
}

func (l *listScreen) sortIcon() string {
	if l.query.Alphabetical {
		return iconSortAlpha
	}
	return iconSortCatalog
}

func (l *listScreen) filterIcon() string {
	if l.query.Selection == predator.TypeAll {
		return iconFilterAll
	}
	return l.query.Selection.Display().Icon
}

func (l *listScreen) update(msg tea.KeyMsg, nav navigator) tea.Cmd {
	if l.picker != nil {
		return l.updatePicker(msg)
	}
	if l.focused {
		return l.updateSearch(msg)
	}
	switch {
	case key.Matches(msg, l.keys.Up):
		if l.cursor > 0 {
			l.cursor--
			l.clampOffset()
		}
	case key.Matches(msg, l.keys.Down):
		if l.cursor < len(l.visible)-1 {
			l.cursor++
			l.clampOffset()
		}
	case key.Matches(msg, l.keys.Select):
		p, ok := l.selected()
		if !ok {
			return nil
		}
		nav.push(newDetailScreen(p, l.overview.At(p.Location), l.closeUp, l.opener, l.styles, l.keys))
	case key.Matches(msg, l.keys.Search):
		l.focused = true
		return l.search.Focus()
	case key.Matches(msg, l.keys.Sort):
		l.toggleAlphabetical()
	case key.Matches(msg, l.keys.Filter):
		l.picker = newTypePicker(l.query.Selection)
	case key.Matches(msg, l.keys.Back):
		if l.query.SearchText != "" {
			l.search.SetValue("")
			l.setSearchText("")
			nav.setStatus("search cleared")
		}
	}
	return nil
}

func (l *listScreen) relay(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	return cmd
}

func (l *listScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		l.focused = false
		l.search.Blur()
		return nil
	case tea.KeyUp, tea.KeyDown:
		l.focused = false
		l.search.Blur()
		return l.update(msg, nil)
	}
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.setSearchText(l.search.Value())
	return cmd
}

func (l *listScreen) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, l.keys.Back):
		l.picker = nil
	case key.Matches(msg, l.keys.Up):
		l.picker.move(-1)
	case key.Matches(msg, l.keys.Down):
		l.picker.move(1)
	case key.Matches(msg, l.keys.Select):
		t := l.picker.current()
		l.picker = nil
		l.selectType(t)
	}
	return nil
}

func (l *listScreen) helpKeys() []key.Binding {
	if l.picker != nil {
		return []key.Binding{l.keys.Up, l.keys.Down, l.keys.Select, l.keys.Back}
	}
	if l.focused {
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/esc", "done"))}
	}
	return []key.Binding{l.keys.Up, l.keys.Down, l.keys.Select, l.keys.Search, l.keys.Sort, l.keys.Filter}
}

func (l *listScreen) view(width, height int) string {
	var b strings.Builder
	b.WriteString(l.header(width))
	b.WriteString("\n")
	b.WriteString(l.search.View())
	b.WriteString("\n\n")

	if l.picker != nil {
		b.WriteString(l.picker.view(l.styles))
		return b.String()
	}

	if len(l.visible) == 0 {
		b.WriteString(l.styles.subtle.Render("No predators match."))
		if hint, ok := predator.Suggest(l.catalog.Filter(l.query.Selection), l.query.SearchText); ok {
			b.WriteString(l.styles.subtle.Render(fmt.Sprintf(" Did you mean %s?", hint)))
		}
		return b.String()
	}

	end := min(l.offset+l.rowsVisible(), len(l.visible))
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(l.visible[i], i == l.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l *listScreen) header(width int) string {
	title := l.styles.title.Render("Apex Predators")
	sortPill := l.styles.pill
	if l.query.Alphabetical {
		sortPill = l.styles.pillOn
	}
	filterPill := l.styles.pill
	if l.query.Selection != predator.TypeAll {
		filterPill = l.styles.pillOn
	}
	left := sortPill.Render(l.sortIcon())
	right := filterPill.Render(l.query.Selection.Display().Glyph + " " + l.filterIcon())
	count := l.styles.subtle.Render(fmt.Sprintf("%d/%d", len(l.visible), l.catalog.Len()))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(title)-lipgloss.Width(count)-lipgloss.Width(right)-3, 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", title, " ", count, strings.Repeat(" ", gap), right)
}

func (l *listScreen) renderRow(p predator.ApexPredator, selected bool) string {
	marker := "  "
	nameStyle := l.styles.row
	if selected {
		marker = l.styles.selected.Render("▶ ")
		nameStyle = l.styles.selected
	}
	return marker + nameStyle.Render(p.Name) + "  " + l.styles.badge(p.Type)
}

// typePicker is the filter menu.
type typePicker struct {
	options []predator.Type
	cursor  int
}

func newTypePicker(current predator.Type) *typePicker {
	p := &typePicker{options: predator.Types()}
	for i, t := range p.options {
		if t == current {
			p.cursor = i
		}
	}
	return p
}

func (p *typePicker) move(delta int) {
	p.cursor = max(0, min(p.cursor+delta, len(p.options)-1))
}

func (p *typePicker) current() predator.Type {
	return p.options[p.cursor]
}

func (p *typePicker) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.heading.Render("Filter"))
	for i, t := range p.options {
		d := t.Display()
		marker := "  "
		line := fmt.Sprintf("%s %s", d.Glyph, d.Label)
		if i == p.cursor {
			marker = "▶ "
			line = st.selected.Render(line)
		}
		b.WriteString("\n" + marker + line + st.subtle.Render("  "+d.Icon))
	}
	return st.modal.Render(b.String())
}
