package top

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_shortHelpView(t *testing.T) {
	tests := []struct {
		name     string
		bindings []key.Binding
		width    int
		want     string
	}{
		{
			"single column",
			[]key.Binding{
				key.NewBinding(key.WithHelp("←", "previous file")),
				key.NewBinding(key.WithHelp("→", "next file")),
			},
			30,
			"← previous file\n→ next file    ",
		},
		{
			"two columns",
			[]key.Binding{
				key.NewBinding(key.WithHelp("a", "aaa")),
				key.NewBinding(key.WithHelp("b", "bbb")),
				key.NewBinding(key.WithHelp("m", "menu")),
			},
			30,
			"a aaa   m menu\nb bbb         ",
		},
		{
			"truncated to width",
			[]key.Binding{
				key.NewBinding(key.WithHelp("a", "aaa")),
				key.NewBinding(key.WithHelp("b", "bbb")),
				key.NewBinding(key.WithHelp("c", "ccc")),
				key.NewBinding(key.WithHelp("d", "ddd")),
			},
			10,
			"a aaa\nb bbb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortHelpView(tt.bindings, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}
