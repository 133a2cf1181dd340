package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Menu   key.Binding
	Logs   key.Binding
	Escape key.Binding
	Quit   key.Binding
	Help   key.Binding
}

var Global = global{
	Menu: key.NewBinding(
		key.WithKeys("m", "."),
		key.WithHelp("m", "file menu"),
	),
	Logs: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logs"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "`"),
		key.WithHelp("esc, `", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
