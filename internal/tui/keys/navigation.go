package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	TabPrevious key.Binding
	TabNext     key.Binding
	LineUp      key.Binding
	LineDown    key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	GotoTop     key.Binding
	GotoBottom  key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	TabPrevious: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous file"),
	),
	TabNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next file"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("b", "pgup"),
		key.WithHelp("b/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("f", "pgdown"),
		key.WithHelp("f/pgdn", "page down"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "go to start"),
	),
	GotoBottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "go to end"),
	),
}
