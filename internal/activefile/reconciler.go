// Package activefile chooses which file is active as a project's visible files
// change.
package activefile

import (
	"github.com/playpen/playpen/internal/logging"
)

// File is a file that can be made active.
type File interface {
	FileName() string
	IsHidden() bool
}

// State is the active file: its name and its index within the visible files.
// An empty Name means there is no active file.
type State struct {
	Name  string
	Index int
}

// None is the state when there are no visible files.
var None = State{}

// Reconciler keeps track of the active file across changes to the file list,
// preferring continuity: the active file stays active for as long as it is
// visible, and when it goes away its nearest visible neighbour to the left
// takes over.
type Reconciler struct {
	state State
	// visible is the list of visible names at the last reconciliation.
	visible []string

	logger logging.Interface
}

func New(logger logging.Interface) *Reconciler {
	if logger == nil {
		logger = logging.Discard
	}
	return &Reconciler{logger: logger}
}

// State returns the current active file.
func (r *Reconciler) State() State { return r.state }

// SetActive makes the named file the one to keep active, e.g. when the
// displayed file is changed programmatically, and reconciles against files.
func (r *Reconciler) SetActive(name string, files []File) State {
	r.state.Name = name
	return r.Reconcile(files)
}

// Reconcile recomputes the active file after files has changed, and returns
// the new state.
func (r *Reconciler) Reconcile(files []File) State {
	visible := visibleNames(files)
	next := reconcile(r.state, r.visible, visible)
	if next != r.state {
		r.logger.Debug("reconciled active file", "previous", r.state.Name, "active", next.Name, "index", next.Index)
	}
	r.state = next
	r.visible = visible
	return next
}

func reconcile(prev State, before, after []string) State {
	if len(after) == 0 {
		return None
	}
	// The active file is still visible: keep it, following it to its new
	// position.
	if prev.Name != "" {
		if i := indexOf(after, prev.Name); i >= 0 {
			return State{Name: prev.Name, Index: i}
		}
	}
	// Otherwise take the nearest file to the left of where the active file
	// was, among the files that were visible before the change.
	if prev.Index < len(before) {
		for i := prev.Index; i >= 0; i-- {
			if j := indexOf(after, before[i]); j >= 0 {
				return State{Name: before[i], Index: j}
			}
		}
	}
	// Otherwise fall back to position within the new list.
	i := min(max(prev.Index, 0), len(after)-1)
	return State{Name: after[i], Index: i}
}

func visibleNames(files []File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsHidden() {
			names = append(names, f.FileName())
		}
	}
	return names
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
