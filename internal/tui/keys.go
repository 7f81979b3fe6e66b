package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Search  key.Binding
	Sort    key.Binding
	Filter  key.Binding
	Next    key.Binding
	Image   key.Binding
	Map     key.Binding
	Open    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Left    key.Binding
	Right   key.Binding
	Mirror  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Image:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "image")),
		Map:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "map")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "rotate")),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Mirror:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mirror")),
	}
}
