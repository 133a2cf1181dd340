// Package project provides the files of a playground project, optionally
// mirrored to a directory on disk.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/otiai10/copy"
	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/pubsub"
	"github.com/playpen/playpen/internal/resource"
)

var (
	ErrExists   = fmt.Errorf("file %w", resource.ErrExists)
	ErrNotFound = fmt.Errorf("file %w", resource.ErrNotFound)
)

// Project is an ordered collection of files. Changes to the collection are
// published as events.
type Project struct {
	*pubsub.Broker[FileEntry]

	dir    string
	logger logging.Interface

	mu      sync.Mutex
	files   []FileEntry
	content map[string][]byte
}

type Options struct {
	// Dir is the directory in which the project's files are kept. If empty
	// the project is kept in memory only.
	Dir string
	// Template is a directory whose contents are copied into Dir before the
	// project is loaded. Files already in Dir are left untouched.
	Template string
	// Files seeds an in-memory project.
	Files []FileEntry

	Logger logging.Interface
}

// Open opens a project.
func Open(opts Options) (*Project, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	p := &Project{
		Broker:  pubsub.NewBroker[FileEntry](opts.Logger),
		dir:     opts.Dir,
		logger:  opts.Logger,
		content: make(map[string][]byte),
	}
	for _, f := range opts.Files {
		if err := p.insert(f); err != nil {
			return nil, err
		}
	}
	if p.dir == "" {
		return p, nil
	}
	if opts.Template != "" {
		err := copy.Copy(opts.Template, p.dir, copy.Options{
			OnDirExists: func(_, _ string) copy.DirExistsAction {
				return copy.Merge
			},
			Skip: func(_ os.FileInfo, src, dest string) (bool, error) {
				// Don't overwrite files from a previous session.
				_, err := os.Stat(dest)
				return err == nil && src != opts.Template, nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("copying template: %w", err)
		}
		p.logger.Info("copied template", "template", opts.Template, "dir", p.dir)
	}
	if err := p.load(); err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	p.logger.Info("opened project", "dir", p.dir, "files", len(p.files))
	return p, nil
}

// load populates the project from its directory, using the manifest for file
// order, labels and visibility. Files on disk missing from the manifest are
// appended in alphabetical order; manifest entries missing from disk are
// skipped.
func (p *Project) load() error {
	m, _, err := readManifest(p.dir)
	if err != nil {
		return err
	}
	onDisk, err := listDir(p.dir)
	if err != nil {
		return err
	}
	for _, mf := range m.Files {
		if !slices.Contains(onDisk, mf.Name) {
			p.logger.Warn("skipping file missing from project directory", "file", mf.Name)
			continue
		}
		err := p.insert(FileEntry{Name: mf.Name, Label: mf.Label, Hidden: mf.Hidden})
		if errors.Is(err, ErrExists) || errors.Is(err, ErrInvalidName) {
			p.logger.Warn("skipping manifest entry", "file", mf.Name, "error", err)
			continue
		}
	}
	for _, name := range onDisk {
		if p.index(name) < 0 {
			_ = p.insert(FileEntry{Name: name})
		}
	}
	return nil
}

// listDir lists the names of regular files in dir, skipping dot-files and the
// manifest.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, os.MkdirAll(dir, 0o755)
	} else if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if ignored(e.Name()) || !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func ignored(name string) bool {
	return name == ManifestFilename || strings.HasPrefix(name, ".")
}

// insert appends a file without publishing an event. Caller holds the lock or
// has exclusive access.
func (p *Project) insert(f FileEntry) error {
	if !validName(f.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, f.Name)
	}
	if p.index(f.Name) >= 0 {
		return fmt.Errorf("%s: %w", f.Name, ErrExists)
	}
	if f.ID == resource.GlobalID {
		f.ID = resource.NewID(resource.File)
	}
	p.files = append(p.files, f)
	return nil
}

func (p *Project) index(name string) int {
	return slices.IndexFunc(p.files, func(f FileEntry) bool {
		return f.Name == name
	})
}

// Dir returns the project directory, or an empty string for an in-memory
// project.
func (p *Project) Dir() string { return p.dir }

// Files returns all files in order, including hidden files.
func (p *Project) Files() []FileEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.files)
}

// Visible returns files that are not hidden, in order.
func (p *Project) Visible() []FileEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible := make([]FileEntry, 0, len(p.files))
	for _, f := range p.files {
		if !f.Hidden {
			visible = append(visible, f)
		}
	}
	return visible
}

// Get retrieves a file by ID.
func (p *Project) Get(id resource.ID) (FileEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, f := range p.files {
		if f.ID == id {
			return f, nil
		}
	}
	return FileEntry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Lookup retrieves a file by name.
func (p *Project) Lookup(name string) (FileEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.index(name); i >= 0 {
		return p.files[i], true
	}
	return FileEntry{}, false
}

// AddFile adds an empty file to the end of the project.
func (p *Project) AddFile(name string) (FileEntry, error) {
	if !validName(name) {
		return FileEntry{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	p.mu.Lock()
	if err := p.insert(FileEntry{Name: name}); err != nil {
		p.mu.Unlock()
		return FileEntry{}, err
	}
	f := p.files[len(p.files)-1]
	if err := p.writeFile(name, nil); err != nil {
		p.files = p.files[:len(p.files)-1]
		p.mu.Unlock()
		return FileEntry{}, err
	}
	err := p.saveManifest()
	p.mu.Unlock()

	p.logger.Info("added file", "file", f)
	p.Publish(resource.CreatedEvent, f)
	return f, err
}

// DeleteFile removes a file from the project.
func (p *Project) DeleteFile(name string) error {
	p.mu.Lock()
	i := p.index(name)
	if i < 0 {
		p.mu.Unlock()
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	// Remove from disk first, leaving the project untouched should that fail.
	if err := p.removeFile(name); err != nil {
		p.mu.Unlock()
		return err
	}
	f := p.files[i]
	p.files = slices.Delete(p.files, i, i+1)
	delete(p.content, name)
	err := p.saveManifest()
	p.mu.Unlock()

	p.logger.Info("deleted file", "file", f)
	p.Publish(resource.DeletedEvent, f)
	return err
}

// RenameFile renames a file, keeping its position, label and visibility.
func (p *Project) RenameFile(oldName, newName string) (FileEntry, error) {
	if !validName(newName) {
		return FileEntry{}, fmt.Errorf("%w: %q", ErrInvalidName, newName)
	}
	p.mu.Lock()
	i := p.index(oldName)
	if i < 0 {
		p.mu.Unlock()
		return FileEntry{}, fmt.Errorf("%s: %w", oldName, ErrNotFound)
	}
	if p.index(newName) >= 0 {
		p.mu.Unlock()
		return FileEntry{}, fmt.Errorf("%s: %w", newName, ErrExists)
	}
	if p.dir != "" {
		if err := os.Rename(p.path(oldName), p.path(newName)); err != nil {
			p.mu.Unlock()
			return FileEntry{}, fmt.Errorf("renaming file: %w", err)
		}
	}
	prev := p.files[i]
	p.files[i].Name = newName
	if b, ok := p.content[oldName]; ok {
		p.content[newName] = b
		delete(p.content, oldName)
	}
	f := p.files[i]
	err := p.saveManifest()
	p.mu.Unlock()

	p.logger.Info("renamed file", "from", oldName, "to", newName)
	p.PublishEvent(resource.Event[FileEntry]{
		Type:     resource.UpdatedEvent,
		Payload:  f,
		Previous: prev,
	})
	return f, err
}

// SetHidden hides or shows a file.
func (p *Project) SetHidden(name string, hidden bool) (FileEntry, error) {
	return p.update(name, func(f *FileEntry) {
		f.Hidden = hidden
	})
}

// SetLabel sets the label displayed for a file.
func (p *Project) SetLabel(name, label string) (FileEntry, error) {
	return p.update(name, func(f *FileEntry) {
		f.Label = label
	})
}

func (p *Project) update(name string, fn func(*FileEntry)) (FileEntry, error) {
	p.mu.Lock()
	i := p.index(name)
	if i < 0 {
		p.mu.Unlock()
		return FileEntry{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	prev := p.files[i]
	fn(&p.files[i])
	f := p.files[i]
	if f == prev {
		p.mu.Unlock()
		return f, nil
	}
	err := p.saveManifest()
	p.mu.Unlock()

	p.logger.Debug("updated file", "file", f, "hidden", f.Hidden, "label", f.Label)
	p.PublishEvent(resource.Event[FileEntry]{
		Type:     resource.UpdatedEvent,
		Payload:  f,
		Previous: prev,
	})
	return f, err
}

// Content returns the contents of a file.
func (p *Project) Content(name string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index(name) < 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if p.dir == "" {
		return p.content[name], nil
	}
	return os.ReadFile(p.path(name))
}

// SetContent replaces the contents of a file.
func (p *Project) SetContent(name string, content []byte) error {
	p.mu.Lock()
	i := p.index(name)
	if i < 0 {
		p.mu.Unlock()
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	f := p.files[i]
	err := p.writeFile(name, content)
	p.mu.Unlock()
	if err != nil {
		return err
	}

	p.logger.Debug("updated content", "file", f.ID, "bytes", len(content))
	p.Publish(resource.UpdatedEvent, f)
	return nil
}

func (p *Project) path(name string) string {
	return filepath.Join(p.dir, name)
}

func (p *Project) writeFile(name string, content []byte) error {
	if p.dir == "" {
		p.content[name] = content
		return nil
	}
	if err := os.WriteFile(p.path(name), content, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

func (p *Project) removeFile(name string) error {
	if p.dir == "" {
		return nil
	}
	err := os.Remove(p.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

func (p *Project) saveManifest() error {
	if p.dir == "" {
		return nil
	}
	m := manifest{Files: make([]manifestFile, len(p.files))}
	for i, f := range p.files {
		m.Files[i] = manifestFile{Name: f.Name, Label: f.Label, Hidden: f.Hidden}
	}
	if err := writeManifest(p.dir, m); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	return nil
}
