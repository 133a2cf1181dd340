// Package editor displays the contents of the active file.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/resource"
	"github.com/playpen/playpen/internal/tui"
	"github.com/playpen/playpen/internal/tui/keys"
)

// ID is the identifier under which the main editor is registered.
const ID = "main"

// Source provides file contents.
type Source interface {
	Content(name string) ([]byte, error)
}

// contentMsg carries the contents of a file.
type contentMsg struct {
	name    string
	content string
}

// Model is a read-only view of a file.
type Model struct {
	source   Source
	viewport viewport.Model
	name     string
	loaded   bool
}

func New(source Source, width, height int) *Model {
	vp := viewport.New(width, height)
	vp.KeyMap = viewport.KeyMap{
		PageDown: keys.Navigation.PageDown,
		PageUp:   keys.Navigation.PageUp,
		Up:       keys.Navigation.LineUp,
		Down:     keys.Navigation.LineDown,
	}
	return &Model{
		source:   source,
		viewport: vp,
	}
}

// Name is the file currently shown; empty if none.
func (m *Model) Name() string { return m.name }

// Show switches to the named file and loads its contents. An empty name
// clears the editor.
func (m *Model) Show(name string) tea.Cmd {
	if name != m.name {
		m.viewport.GotoTop()
	}
	m.name = name
	m.loaded = false
	if name == "" {
		m.viewport.SetContent("")
		return nil
	}
	return m.load(name)
}

func (m *Model) load(name string) tea.Cmd {
	return func() tea.Msg {
		content, err := m.source.Content(name)
		if err != nil {
			return tui.NewErrorMsg(err, "loading %s", name)
		}
		return contentMsg{name: name, content: string(content)}
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case contentMsg:
		// Ignore contents for a file no longer shown.
		if msg.name == m.name {
			m.viewport.SetContent(msg.content)
			m.loaded = true
		}
		return nil
	case resource.Event[project.FileEntry]:
		if msg.Type == resource.UpdatedEvent && msg.Payload.Name == m.name && msg.Previous.Name == "" {
			return m.load(m.name)
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.GotoTop):
			m.viewport.GotoTop()
			return nil
		case key.Matches(msg, keys.Navigation.GotoBottom):
			m.viewport.GotoBottom()
			return nil
		}
	case tea.WindowSizeMsg:
		// Leave room for the scrollbar.
		m.viewport.Width = max(0, msg.Width-tui.ScrollbarWidth)
		m.viewport.Height = msg.Height
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

var placeholderStyle = tui.Regular.Foreground(tui.InactiveTabColor).Padding(1, 2)

func (m *Model) View() string {
	if m.name == "" {
		return placeholderStyle.Render("No file open. Press m to create a file.")
	}
	if !m.loaded {
		return placeholderStyle.Render(fmt.Sprintf("Loading %s...", m.name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		tui.Scrollbar(
			m.viewport.Height,
			m.viewport.TotalLineCount(),
			m.viewport.VisibleLineCount(),
			m.viewport.YOffset,
		),
	)
}
