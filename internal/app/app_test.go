package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_Version(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stdout bytes.Buffer
	err := Start(&stdout, &bytes.Buffer{}, []string{"--version"})
	require.NoError(t, err)

	assert.Equal(t, version.Version+"\n", stdout.String())
}

func TestNewApp(t *testing.T) {
	workdir := filepath.Join(t.TempDir(), "session")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	_, proj, err := newApp(ctx, Config{
		Workdir:  workdir,
		Template: "../project/testdata/template",
		Watch:    true,
		Logging:  logging.Options{Level: logging.DefaultLevel},
	})
	require.NoError(t, err)

	var names []string
	for _, f := range proj.Files() {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "index.html")
	assert.Contains(t, names, "app.js")

	// The template is copied into the working directory.
	_, err = os.Stat(filepath.Join(workdir, "index.html"))
	assert.NoError(t, err)
}
