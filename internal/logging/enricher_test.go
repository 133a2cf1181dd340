package logging

import (
	"testing"

	"github.com/playpen/playpen/internal/resource"
	"github.com/stretchr/testify/assert"
)

func TestReferenceUpdater(t *testing.T) {
	file := &fakeFile{ID: resource.NewID(resource.File), name: "index.html"}
	updater := &ReferenceUpdater[*fakeFile]{
		Getter: &fakeFileGetter{file: file},
		Name:   "file",
		Field:  "FileID",
	}

	t.Run("replace file id with file", func(t *testing.T) {
		args := []any{"file", file.ID}
		got := updater.UpdateArgs(args...)

		want := []any{"file", file}
		assert.Equal(t, want, got)
	})

	t.Run("add file when referenced from struct with pointer field", func(t *testing.T) {
		type logMsgArg struct {
			FileID *resource.ID
		}

		args := []any{"arg1", logMsgArg{FileID: &file.ID}}
		got := updater.UpdateArgs(args...)

		want := append(args, "file", file)
		assert.Equal(t, want, got)
	})

	t.Run("add file when referenced from struct with non-pointer field", func(t *testing.T) {
		type logMsgArg struct {
			FileID resource.ID
		}

		args := []any{"arg1", logMsgArg{FileID: file.ID}}
		got := updater.UpdateArgs(args...)

		want := append(args, "file", file)
		assert.Equal(t, want, got)
	})

	t.Run("handle nil pointer from struct", func(t *testing.T) {
		type logMsgArg struct {
			FileID *resource.ID
		}

		args := []any{"arg1", logMsgArg{FileID: nil}}
		got := updater.UpdateArgs(args...)

		assert.Equal(t, args, got)
	})
}

type fakeFile struct {
	resource.ID

	name string
}

type fakeFileGetter struct {
	file *fakeFile
}

func (f *fakeFileGetter) Get(resource.ID) (*fakeFile, error) {
	return f.file, nil
}
