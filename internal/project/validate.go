package project

import (
	"errors"
	"strings"
)

var ErrInvalidName = errors.New("invalid filename")

// validName reports whether name can be used as a filename, regardless of
// whether it is already taken.
func validName(name string) bool {
	switch {
	case name == "", name == ".", name == "..":
		return false
	case strings.TrimSpace(name) != name:
		return false
	case strings.ContainsAny(name, `/\`+"\x00"):
		return false
	case name == ManifestFilename:
		return false
	}
	return true
}

// IsValidNewFilename reports whether a file can be created, or renamed to,
// name.
func (p *Project) IsValidNewFilename(name string) bool {
	if !validName(name) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.index(name) < 0
}
