package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type fileMenu struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	New    key.Binding
	Rename key.Binding
	Delete key.Binding
	Hide   key.Binding
	Close  key.Binding
}

// FileMenu returns key bindings for the file menu.
var FileMenu = fileMenu{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new file"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Hide: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "hide"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "m"),
		key.WithHelp("esc", "close menu"),
	),
}
