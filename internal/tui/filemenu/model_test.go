package filemenu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Model, *project.Project) {
	t.Helper()

	p, err := project.Open(project.Options{
		Files: []project.FileEntry{
			{Name: "index.html"},
			{Name: "app.js"},
			{Name: "secret.js", Hidden: true},
		},
	})
	require.NoError(t, err)
	return New(p), p
}

func press(m *Model, s string) tea.Cmd {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func promptMsg(t *testing.T, cmd tea.Cmd) tui.PromptMsg {
	t.Helper()

	require.NotNil(t, cmd)
	msg, ok := cmd().(tui.PromptMsg)
	require.True(t, ok)
	return msg
}

func TestMenu_Closed(t *testing.T) {
	m, _ := setup(t)
	assert.Nil(t, press(m, "n"))
	assert.Empty(t, m.View())
}

func TestMenu_Entries(t *testing.T) {
	m, _ := setup(t)

	m.Open("", 0)
	assert.Equal(t, []string{"New file", "Show secret.js"}, labels(m.entries()))

	m.Open("app.js", 4)
	assert.Equal(t, []string{"New file", "Rename", "Delete", "Hide", "Show secret.js"}, labels(m.entries()))
	assert.Contains(t, m.View(), "Rename")
}

func labels(entries []entry) (labels []string) {
	for _, e := range entries {
		labels = append(labels, e.label)
	}
	return
}

func TestMenu_NewFile(t *testing.T) {
	m, p := setup(t)
	m.Open("app.js", 0)

	msg := promptMsg(t, press(m, "n"))
	assert.False(t, m.IsOpen())

	// Submission is only enabled for valid names.
	assert.False(t, msg.Enabled("app.js"))
	assert.False(t, msg.Enabled(""))
	assert.True(t, msg.Enabled("util.js"))

	got := msg.Action("util.js")()
	assert.Equal(t, tui.ActivateFileMsg{Name: "util.js"}, got)
	_, ok := p.Lookup("util.js")
	assert.True(t, ok)
}

func TestMenu_Rename(t *testing.T) {
	m, p := setup(t)
	m.Open("app.js", 0)

	// select via cursor
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	msg := promptMsg(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "app.js", msg.InitialValue)

	got := msg.Action("main.js")()
	assert.Equal(t, tui.ActivateFileMsg{Name: "main.js"}, got)
	assert.Equal(t, "main.js", p.Files()[1].Name)
}

func TestMenu_Delete(t *testing.T) {
	m, p := setup(t)
	m.Open("app.js", 0)

	msg := promptMsg(t, press(m, "d"))
	assert.Equal(t, "Delete app.js? (y/N): ", msg.Prompt)

	got := msg.Action("y")()
	assert.Equal(t, tui.InfoMsg("deleted app.js"), got)
	_, ok := p.Lookup("app.js")
	assert.False(t, ok)
}

func TestMenu_DeleteError(t *testing.T) {
	m, p := setup(t)
	m.Open("app.js", 0)

	msg := promptMsg(t, press(m, "d"))
	require.NoError(t, p.DeleteFile("app.js"))

	got := msg.Action("y")()
	assert.IsType(t, tui.ErrorMsg{}, got)
}

func TestMenu_HideAndShow(t *testing.T) {
	m, p := setup(t)
	m.Open("app.js", 0)

	cmd := press(m, "x")
	require.NotNil(t, cmd)
	assert.Equal(t, tui.InfoMsg("hid app.js"), cmd())
	assert.Len(t, p.Visible(), 1)

	m.Open("index.html", 0)
	// move to the last entry, "Show secret.js"
	for range 10 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tui.ActivateFileMsg{Name: "secret.js"}, cmd())
}

func TestMenu_Close(t *testing.T) {
	m, _ := setup(t)
	m.Open("app.js", 0)

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.IsOpen())
}

func TestMenu_NavigateAndSelect(t *testing.T) {
	m, _ := setup(t)
	m.Open("app.js", 0)

	// Messages other than keys are ignored.
	assert.Nil(t, m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.True(t, m.IsOpen())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})

	msg := promptMsg(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "Rename to: ", msg.Prompt)
	assert.Equal(t, "app.js", msg.InitialValue)
	assert.False(t, m.IsOpen())
}
