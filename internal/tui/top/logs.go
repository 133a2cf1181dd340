package top

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/tui"
)

const timeFormat = "2006-01-02T15:04:05.000"

// logsView renders the most recent log messages, newest first, truncated to
// fit the given dimensions.
func logsView(logger *logging.Logger, width, height int) string {
	msgs := logger.List()
	if len(msgs) > height {
		msgs = msgs[:height]
	}
	rows := make([]string, len(msgs))
	for i, msg := range msgs {
		var levelColor lipgloss.TerminalColor = tui.InfoLogLevel
		switch msg.Level {
		case "ERROR":
			levelColor = tui.ErrorLogLevel
		case "WARN":
			levelColor = tui.WarnLogLevel
		case "DEBUG":
			levelColor = tui.DebugLogLevel
		}

		var b strings.Builder
		b.WriteString(tui.Regular.Faint(true).Render(msg.Time.Format(timeFormat)))
		b.WriteString(" ")
		b.WriteString(tui.Bold.Foreground(levelColor).Width(6).Render(msg.Level))
		b.WriteString(msg.Message)
		b.WriteString(" ")
		for _, attr := range msg.Attributes {
			b.WriteString(tui.Regular.Faint(true).Render(attr.Key + "="))
			b.WriteString(attr.Value + " ")
		}
		rows[i] = tui.Regular.MaxWidth(width).Inline(true).Render(b.String())
	}
	return tui.Padded.Render(strings.Join(rows, "\n"))
}
