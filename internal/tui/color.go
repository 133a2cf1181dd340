package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Purple      = lipgloss.Color("135")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	LightGreen  = lipgloss.Color("86")
	Blue        = lipgloss.Color("63")
	Grey        = lipgloss.Color("#737373")
	LightGrey   = lipgloss.Color("245")
	DarkGrey    = lipgloss.Color("#606362")
	White       = lipgloss.Color("#ffffff")
	OffWhite    = lipgloss.Color("#a8a7a5")
	LighterGrey = lipgloss.Color("250")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ActiveTabColor = lipgloss.AdaptiveColor{
		Dark:  string(White),
		Light: string(Black),
	}
	InactiveTabColor = lipgloss.AdaptiveColor{
		Dark:  string(LightGrey),
		Light: string(Grey),
	}
	FocusedTabColor = Purple

	CurrentBackground = Grey
	CurrentForeground = White

	DisabledColor = lipgloss.AdaptiveColor{
		Dark:  string(DarkGrey),
		Light: string(LighterGrey),
	}

	HelpKey = lipgloss.AdaptiveColor{
		Light: "248",
		Dark:  "#626262",
	}
)
