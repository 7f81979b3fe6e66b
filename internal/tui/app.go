// Package tui is the interactive terminal front end: a predator list with
// search, sort and type filter, and a detail screen with an embedded map.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/jpapex/internal/mapview"
	"github.com/jask/jpapex/internal/predator"
)

// Opener hands a URL to something outside the process, typically the
// platform browser.
type Opener interface {
	Open(url string) error
}

// Options configures an App. Zero presets fall back to the mapview defaults.
type Options struct {
	Overview mapview.Preset
	CloseUp  mapview.Preset
	Theme    string
	Opener   Opener
	Log      *zap.Logger
}

// screen is one entry of the navigation stack.
type screen interface {
	name() string
	update(msg tea.KeyMsg, nav navigator) tea.Cmd
	// relay receives every other message, such as cursor blinks and mouse events.
	relay(msg tea.Msg) tea.Cmd
	view(width, height int) string
	resize(width, height int)
	helpKeys() []key.Binding
	// capturesText reports whether printable keys go to a text field.
	capturesText() bool
}

// navigator is what screens may do to the app.
type navigator interface {
	push(s screen)
	pop()
	setStatus(msg string)
}

// App ties together screens.
type App struct {
	catalog *predator.Catalog
	opts    Options
	log     *zap.Logger
	styles  styles
	keys    keyMap
	help    help.Model
	stack   []screen
	width   int
	height  int
	status  string
}

// New builds an App whose root screen lists cat.
func New(cat *predator.Catalog, opts Options) *App {
	if opts.Overview.Distance == 0 {
		opts.Overview = mapview.OverviewPreset
	}
	if opts.CloseUp.Distance == 0 {
		opts.CloseUp = mapview.CloseUpPreset
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	a := &App{
		catalog: cat,
		opts:    opts,
		log:     opts.Log,
		styles:  newStyles(opts.Theme),
		keys:    defaultKeys(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
	a.stack = []screen{newListScreen(cat, a.styles, a.keys, opts.Overview, opts.CloseUp, opts.Opener)}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		for _, s := range a.stack {
			s.resize(a.width, a.bodyHeight())
		}
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		top := a.top()
		if key.Matches(m, a.keys.Quit) && !top.capturesText() {
			return a, tea.Quit
		}
		a.status = ""
		return a, top.update(m, a)
	case linkOpenedMsg:
		if m.err != nil {
			a.log.Warn("open link failed", zap.String("url", m.url), zap.Error(m.err))
			a.status = "could not open link: " + m.err.Error()
		} else {
			a.log.Debug("link opened", zap.String("url", m.url))
			a.status = "opened " + m.url
		}
	default:
		return a, a.top().relay(msg)
	}
	return a, nil
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.top().view(a.width, a.bodyHeight()))
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(a.styles.status.Render(a.status))
		b.WriteString("\n")
	}
	bindings := append(a.top().helpKeys(), a.keys.Quit)
	b.WriteString(a.help.ShortHelpView(bindings))
	return b.String()
}

func (a *App) bodyHeight() int {
	return max(a.height-3, 1)
}

func (a *App) top() screen {
	return a.stack[len(a.stack)-1]
}

func (a *App) push(s screen) {
	s.resize(a.width, a.bodyHeight())
	a.stack = append(a.stack, s)
	a.log.Debug("navigate", zap.String("screen", s.name()), zap.Int("depth", len(a.stack)))
}

func (a *App) pop() {
	if len(a.stack) > 1 {
		a.stack = a.stack[:len(a.stack)-1]
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
}

type linkOpenedMsg struct {
	url string
	err error
}

func openLinkCmd(o Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: o.Open(url)}
	}
}
