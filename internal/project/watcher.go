package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/playpen/playpen/internal/resource"
)

// Watch watches the project directory for files created, modified or removed
// by other programs and applies them to the project. It returns once the
// watcher is running; watching stops when the context is canceled.
func (p *Project) Watch(ctx context.Context) error {
	if p.dir == "" {
		return errors.New("cannot watch an in-memory project")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(p.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching project directory: %w", err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				p.handleWatchEvent(ev)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.logger.Error("watching project directory", "error", err)
			}
		}
	}()
	return nil
}

func (p *Project) handleWatchEvent(ev fsnotify.Event) {
	name := filepath.Base(ev.Name)
	if ignored(name) {
		return
	}
	switch {
	case ev.Has(fsnotify.Create):
		info, err := os.Stat(ev.Name)
		if err != nil || !info.Mode().IsRegular() {
			return
		}
		p.adopt(name)
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		p.forget(name)
	case ev.Has(fsnotify.Write):
		if f, ok := p.Lookup(name); ok {
			p.Publish(resource.UpdatedEvent, f)
		}
	}
}

// adopt adds a file created outside of playpen. Files the project already
// knows about, including those it has just created itself, are ignored.
func (p *Project) adopt(name string) {
	p.mu.Lock()
	if p.index(name) >= 0 {
		p.mu.Unlock()
		return
	}
	if err := p.insert(FileEntry{Name: name}); err != nil {
		p.mu.Unlock()
		return
	}
	f := p.files[len(p.files)-1]
	err := p.saveManifest()
	p.mu.Unlock()
	if err != nil {
		p.logger.Error("adopting file", "file", name, "error", err)
	}

	p.logger.Info("detected new file", "file", f)
	p.Publish(resource.CreatedEvent, f)
}

// forget removes a file removed outside of playpen.
func (p *Project) forget(name string) {
	p.mu.Lock()
	i := p.index(name)
	if i < 0 {
		p.mu.Unlock()
		return
	}
	f := p.files[i]
	p.files = append(p.files[:i], p.files[i+1:]...)
	err := p.saveManifest()
	p.mu.Unlock()
	if err != nil {
		p.logger.Error("forgetting file", "file", name, "error", err)
	}

	p.logger.Info("detected removed file", "file", f)
	p.Publish(resource.DeletedEvent, f)
}
