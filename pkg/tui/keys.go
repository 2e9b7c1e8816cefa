package tui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Next   key.Binding
	Filter key.Binding
	Link   key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("space", " ", "enter", "n"), key.WithHelp("space", "another suggestion")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		Link:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "cycle link site")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Filter, k.Link},
		{k.Theme, k.Help, k.Quit},
	}
}
