package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// InfoMsg is an informational message rendered in the footer.
type InfoMsg string

// ErrorMsg is an error rendered in the footer and logged.
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ActivateFileMsg is an instruction to make the named file the active file.
type ActivateFileMsg struct {
	Name string
}

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func ReportInfo(msg string, args ...any) tea.Cmd {
	return CmdHandler(InfoMsg(fmt.Sprintf(msg, args...)))
}
