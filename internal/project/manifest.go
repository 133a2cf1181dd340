package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the name of the file in the project directory that
// records file order, labels and visibility.
const ManifestFilename = "playpen.yaml"

type manifest struct {
	Files []manifestFile `yaml:"files"`
}

type manifestFile struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// readManifest reads the manifest from dir. A missing manifest is not an
// error; false is returned instead.
func readManifest(dir string) (manifest, bool, error) {
	b, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return manifest{}, false, nil
	} else if err != nil {
		return manifest{}, false, err
	}
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return manifest{}, false, fmt.Errorf("parsing %s: %w", ManifestFilename, err)
	}
	return m, true, nil
}

func writeManifest(dir string, m manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFilename), b, 0o644)
}
