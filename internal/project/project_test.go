package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playpen/playpen/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(files []FileEntry) (names []string) {
	for _, f := range files {
		names = append(names, f.Name)
	}
	return
}

func inMemory(t *testing.T, files ...string) *Project {
	t.Helper()

	entries := make([]FileEntry, len(files))
	for i, name := range files {
		entries[i] = FileEntry{Name: name}
	}
	p, err := Open(Options{Files: entries})
	require.NoError(t, err)
	return p
}

func TestProject_IsValidNewFilename(t *testing.T) {
	p := inMemory(t, "a.js")

	tests := []struct {
		name string
		want bool
	}{
		{"b.js", true},
		{"a.js", false},
		{"", false},
		{".", false},
		{"..", false},
		{" b.js", false},
		{"dir/b.js", false},
		{`dir\b.js`, false},
		{ManifestFilename, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsValidNewFilename(tt.name))
		})
	}
}

func TestProject_InMemory(t *testing.T) {
	p := inMemory(t, "a.js", "b.js")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := p.Subscribe(ctx)

	f, err := p.AddFile("c.js")
	require.NoError(t, err)
	assert.Equal(t, "c.js", f.Name)
	assert.Equal(t, resource.File, f.ID.Kind())
	assert.Equal(t, resource.CreatedEvent, (<-sub).Type)

	_, err = p.AddFile("c.js")
	assert.ErrorIs(t, err, ErrExists)
	_, err = p.AddFile("")
	assert.ErrorIs(t, err, ErrInvalidName)

	require.NoError(t, p.SetContent("c.js", []byte("let x;")))
	assert.Equal(t, resource.UpdatedEvent, (<-sub).Type)

	renamed, err := p.RenameFile("c.js", "d.js")
	require.NoError(t, err)
	assert.Equal(t, f.ID, renamed.ID)
	ev := <-sub
	assert.Equal(t, resource.UpdatedEvent, ev.Type)
	assert.Equal(t, "c.js", ev.Previous.Name)
	assert.Equal(t, "d.js", ev.Payload.Name)

	got, err := p.Content("d.js")
	require.NoError(t, err)
	assert.Equal(t, "let x;", string(got))

	_, err = p.RenameFile("d.js", "a.js")
	assert.ErrorIs(t, err, ErrExists)
	_, err = p.RenameFile("missing.js", "e.js")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = p.SetHidden("b.js", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "b.js", "d.js"}, names(p.Files()))
	assert.Equal(t, []string{"a.js", "d.js"}, names(p.Visible()))

	require.NoError(t, p.DeleteFile("a.js"))
	assert.ErrorIs(t, p.DeleteFile("a.js"), ErrNotFound)
	assert.Equal(t, []string{"b.js", "d.js"}, names(p.Files()))

	byID, err := p.Get(renamed.ID)
	require.NoError(t, err)
	assert.Equal(t, "d.js", byID.Name)
}

func TestProject_SetHidden_Unchanged(t *testing.T) {
	p := inMemory(t, "a.js")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := p.Subscribe(ctx)

	_, err := p.SetHidden("a.js", false)
	require.NoError(t, err)

	_, err = p.SetLabel("a.js", "Script")
	require.NoError(t, err)

	// Only the label change is published.
	ev := <-sub
	assert.Equal(t, "Script", ev.Payload.DisplayName())
	assert.Empty(t, sub)
}

func TestProject_Template(t *testing.T) {
	dir := t.TempDir()

	p, err := Open(Options{Dir: dir, Template: "./testdata/template"})
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html", "app.js", "style.css"}, names(p.Files()))
	assert.Equal(t, []string{"index.html", "app.js"}, names(p.Visible()))

	index, ok := p.Lookup("index.html")
	require.True(t, ok)
	assert.Equal(t, "Index", index.DisplayName())

	got, err := p.Content("app.js")
	require.NoError(t, err)
	assert.Equal(t, "console.log(\"hello\");\n", string(got))

	t.Run("mutations are mirrored to disk", func(t *testing.T) {
		_, err := p.AddFile("util.js")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "util.js"))

		_, err = p.RenameFile("util.js", "lib.js")
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "util.js"))
		assert.FileExists(t, filepath.Join(dir, "lib.js"))

		require.NoError(t, p.DeleteFile("lib.js"))
		assert.NoFileExists(t, filepath.Join(dir, "lib.js"))
	})

	t.Run("reopening keeps edits", func(t *testing.T) {
		require.NoError(t, p.SetContent("app.js", []byte("edited")))
		_, err := p.SetHidden("app.js", true)
		require.NoError(t, err)

		reopened, err := Open(Options{Dir: dir, Template: "./testdata/template"})
		require.NoError(t, err)

		got, err := reopened.Content("app.js")
		require.NoError(t, err)
		assert.Equal(t, "edited", string(got))
		assert.Equal(t, []string{"index.html"}, names(reopened.Visible()))
	})
}

func TestProject_LoadWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.js", "a.js", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	p, err := Open(Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "b.js"}, names(p.Files()))
}

func TestProject_Watch(t *testing.T) {
	dir := t.TempDir()
	p, err := Open(Options{Dir: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Watch(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "external.js"), nil, 0o644))
	assert.Eventually(t, func() bool {
		_, ok := p.Lookup("external.js")
		return ok
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(dir, "external.js")))
	assert.Eventually(t, func() bool {
		_, ok := p.Lookup("external.js")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestProject_Watch_InMemory(t *testing.T) {
	p := inMemory(t)
	assert.Error(t, p.Watch(context.Background()))
}

func TestProject_DeleteFile_DiskFailure(t *testing.T) {
	dir := t.TempDir()
	p, err := Open(Options{Dir: dir})
	require.NoError(t, err)
	_, err = p.AddFile("a.js")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	sub := p.Subscribe(ctx)

	// Replace the file with a non-empty directory, which cannot be removed.
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o644))

	err = p.DeleteFile("a.js")
	require.Error(t, err)

	// The project is unchanged and nothing is published.
	assert.Equal(t, []string{"a.js"}, names(p.Files()))
	assert.Empty(t, sub)
}
