// Package filemenu provides the context menu for adding, renaming, deleting,
// hiding and showing project files.
package filemenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/tui"
	"github.com/playpen/playpen/internal/tui/keys"
)

// Project is the file-system collaborator the menu operates on.
type Project interface {
	Files() []project.FileEntry
	AddFile(name string) (project.FileEntry, error)
	DeleteFile(name string) error
	RenameFile(oldName, newName string) (project.FileEntry, error)
	SetHidden(name string, hidden bool) (project.FileEntry, error)
	IsValidNewFilename(name string) bool
}

type action int

const (
	newFile action = iota
	renameFile
	deleteFile
	hideFile
	showFile
)

type entry struct {
	action action
	// file is the file a show entry reveals.
	file  string
	label string
	key   key.Binding
}

// Model is the file menu.
type Model struct {
	project Project

	open bool
	// target is the file the menu was opened on; empty if none.
	target string
	cursor int
	// anchor is the column the menu is rendered at.
	anchor int
}

func New(p Project) *Model {
	return &Model{project: p}
}

// IsOpen reports whether the menu is shown.
func (m *Model) IsOpen() bool { return m.open }

// Open shows the menu for the target file, rendered at the given column.
func (m *Model) Open(target string, anchor int) {
	m.open = true
	m.target = target
	m.cursor = 0
	m.anchor = anchor
}

func (m *Model) Close() {
	m.open = false
}

func (m *Model) entries() []entry {
	entries := []entry{{action: newFile, label: "New file", key: keys.FileMenu.New}}
	if m.target != "" {
		entries = append(entries,
			entry{action: renameFile, label: "Rename", key: keys.FileMenu.Rename},
			entry{action: deleteFile, label: "Delete", key: keys.FileMenu.Delete},
			entry{action: hideFile, label: "Hide", key: keys.FileMenu.Hide},
		)
	}
	for _, f := range m.project.Files() {
		if f.Hidden {
			entries = append(entries, entry{
				action: showFile,
				file:   f.Name,
				label:  fmt.Sprintf("Show %s", f.Name),
			})
		}
	}
	return entries
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	entries := m.entries()
	switch {
	case key.Matches(keyMsg, keys.FileMenu.Close):
		m.Close()
	case key.Matches(keyMsg, keys.FileMenu.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(keyMsg, keys.FileMenu.Down):
		m.cursor = min(len(entries)-1, m.cursor+1)
	case key.Matches(keyMsg, keys.FileMenu.Select):
		return m.choose(entries[min(m.cursor, len(entries)-1)])
	default:
		for _, e := range entries {
			if e.key.Enabled() && len(e.key.Keys()) > 0 && key.Matches(keyMsg, e.key) {
				return m.choose(e)
			}
		}
	}
	return nil
}

// choose closes the menu and carries out the entry's action.
func (m *Model) choose(e entry) tea.Cmd {
	m.Close()
	target := m.target
	switch e.action {
	case newFile:
		return tui.TextPrompt("New file: ", "", m.project.IsValidNewFilename, func(name string) tea.Cmd {
			return m.add(name)
		})
	case renameFile:
		return tui.TextPrompt("Rename to: ", target, m.project.IsValidNewFilename, func(name string) tea.Cmd {
			return m.rename(target, name)
		})
	case deleteFile:
		return tui.YesNoPrompt(fmt.Sprintf("Delete %s?", target), m.delete(target))
	case hideFile:
		return m.setHidden(target, true)
	case showFile:
		return m.setHidden(e.file, false)
	}
	return nil
}

func (m *Model) add(name string) tea.Cmd {
	return func() tea.Msg {
		f, err := m.project.AddFile(name)
		if err != nil {
			return tui.NewErrorMsg(err, "adding file")
		}
		return tui.ActivateFileMsg{Name: f.Name}
	}
}

func (m *Model) rename(oldName, newName string) tea.Cmd {
	return func() tea.Msg {
		f, err := m.project.RenameFile(oldName, newName)
		if err != nil {
			return tui.NewErrorMsg(err, "renaming file")
		}
		return tui.ActivateFileMsg{Name: f.Name}
	}
}

func (m *Model) delete(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.project.DeleteFile(name); err != nil {
			return tui.NewErrorMsg(err, "deleting file")
		}
		return tui.InfoMsg(fmt.Sprintf("deleted %s", name))
	}
}

func (m *Model) setHidden(name string, hidden bool) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.project.SetHidden(name, hidden); err != nil {
			return tui.NewErrorMsg(err, "changing visibility")
		}
		if hidden {
			return tui.InfoMsg(fmt.Sprintf("hid %s", name))
		}
		return tui.ActivateFileMsg{Name: name}
	}
}

var (
	menuStyle     = tui.RoundedBorders.BorderForeground(tui.InactiveTabColor).Padding(0, 1)
	cursorStyle   = tui.Regular.Background(tui.CurrentBackground).Foreground(tui.CurrentForeground)
	shortcutStyle = tui.Regular.Foreground(tui.HelpKey)
)

func (m *Model) View() string {
	if !m.open {
		return ""
	}
	entries := m.entries()
	rows := make([]string, len(entries))
	for i, e := range entries {
		shortcut := "  "
		if keys := e.key.Keys(); len(keys) > 0 {
			shortcut = keys[0] + " "
		}
		row := shortcutStyle.Render(shortcut) + e.label
		if i == m.cursor {
			row = cursorStyle.Render(shortcut + e.label)
		}
		rows[i] = row
	}
	return tui.Regular.MarginLeft(m.anchor).Render(menuStyle.Render(strings.Join(rows, "\n")))
}

func (m *Model) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.FileMenu.Up,
		keys.FileMenu.Down,
		keys.FileMenu.Select,
		keys.FileMenu.Close,
	}
}
