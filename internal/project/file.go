package project

import (
	"log/slog"

	"github.com/playpen/playpen/internal/resource"
)

// FileEntry is a file in a project.
type FileEntry struct {
	resource.ID

	// Name uniquely identifies the file within the project.
	Name string
	// Label is displayed in place of the name, if non-empty.
	Label string
	// Hidden files are part of the project but are not shown as tabs.
	Hidden bool
}

func (f FileEntry) FileName() string { return f.Name }

func (f FileEntry) IsHidden() bool { return f.Hidden }

// DisplayName is the label if set, otherwise the name.
func (f FileEntry) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

func (f FileEntry) String() string { return f.Name }

func (f FileEntry) LogValue() slog.Value {
	return slog.StringValue(f.Name)
}
