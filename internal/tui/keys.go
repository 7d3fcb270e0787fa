package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Deal     key.Binding
	Restart  key.Binding
	Quit     key.Binding
	LogUp    key.Binding
	LogDown  key.Binding
	LogStart key.Binding
	LogEnd   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Deal: key.NewBinding(
			key.WithKeys(" ", "enter", "d"),
			key.WithHelp("space", "deal"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		LogUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		LogDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		LogStart: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "log start"),
		),
		LogEnd: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "log end"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Deal, k.Restart, k.Quit},
		{k.LogUp, k.LogDown, k.LogStart, k.LogEnd},
	}
}
