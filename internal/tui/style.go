package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular        = lipgloss.NewStyle()
	RoundedBorders = Regular.Border(lipgloss.RoundedBorder())
	Bold           = Regular.Bold(true)
	Padded         = Regular.Padding(0, 1)

	Width  = lipgloss.Width
	Height = lipgloss.Height
)
