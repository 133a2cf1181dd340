package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/resource"
	"github.com/playpen/playpen/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource map[string]string

func (f fakeSource) Content(name string) ([]byte, error) {
	content, ok := f[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(content), nil
}

func TestModel(t *testing.T) {
	source := fakeSource{"app.js": "console.log(1);"}
	m := New(source, 80, 10)

	assert.Contains(t, m.View(), "No file open")

	cmd := m.Show("app.js")
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading app.js")

	m.Update(cmd())
	assert.Contains(t, m.View(), "console.log(1);")

	// Content of a file that's since been switched away from is ignored.
	late := m.load("app.js")
	m.Show("")
	m.Update(late())
	assert.Contains(t, m.View(), "No file open")
}

func TestModel_Reload(t *testing.T) {
	source := fakeSource{"app.js": "v1"}
	m := New(source, 80, 10)
	m.Update(m.Show("app.js")())

	source["app.js"] = "v2"
	cmd := m.Update(resource.NewEvent(resource.UpdatedEvent, project.FileEntry{Name: "app.js"}))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.View(), "v2")

	// Updates to other files are ignored.
	assert.Nil(t, m.Update(resource.NewEvent(resource.UpdatedEvent, project.FileEntry{Name: "other.js"})))
}

func TestModel_LoadError(t *testing.T) {
	m := New(fakeSource{}, 80, 10)
	msg := m.Show("missing.js")()
	assert.IsType(t, tui.ErrorMsg{}, msg)
}

func TestModel_Scrollbar(t *testing.T) {
	source := fakeSource{
		"short.js": "one line",
		"long.js":  strings.Repeat("line\n", 20),
	}
	m := New(source, 80, 5)

	m.Update(m.Show("short.js")())
	assert.NotContains(t, m.View(), "█")

	m.Update(m.Show("long.js")())
	assert.Contains(t, m.View(), "█")
}
