package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	Stats    key.Binding
	Flip     key.Binding
	Remember key.Binding
	Forget   key.Binding
	Retry    key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Stats: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "statistics"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "flip"),
		),
		Remember: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "got it"),
		),
		Forget: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "not yet"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Menu: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("enter", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}
