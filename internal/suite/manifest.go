package suite

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gooze.dev/pkg/verdict/internal/adapter"
	"gooze.dev/pkg/verdict/internal/status"
)

// ManifestFile is the file that marks a directory as a suite.
const ManifestFile = "suite.yaml"

// ErrMissingKind is returned for a manifest that does not name a kind.
var ErrMissingKind = errors.New("suite manifest has no kind")

// Manifest is the decoded suite.yaml.
type Manifest struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Status lists status files relative to the suite directory.
	Status []string `yaml:"status"`
	// Build lists the build targets the suite needs.
	Build []string `yaml:"build"`
	// Command is the argv template used to run one test.
	Command []string `yaml:"command"`

	// Tests, Exclude and Negative are doublestar globs for the files kind.
	Tests    []string `yaml:"tests"`
	Exclude  []string `yaml:"exclude"`
	Negative []string `yaml:"negative"`

	// Binary lists and runs the tests of the listed kind.
	Binary string `yaml:"binary"`
}

// ReadManifest loads dir/suite.yaml and fills in defaults.
func ReadManifest(fs adapter.SuiteFSAdapter, dir string) (Manifest, error) {
	var manifest Manifest

	path := fs.JoinPath(dir, ManifestFile)

	data, err := fs.ReadFile(path)
	if err != nil {
		return manifest, fmt.Errorf("read suite manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("parse suite manifest %s: %w", path, err)
	}

	if manifest.Kind == "" {
		return manifest, fmt.Errorf("%s: %w", path, ErrMissingKind)
	}

	if manifest.Name == "" {
		manifest.Name = filepath.Base(dir)
	}

	if len(manifest.Status) == 0 {
		manifest.Status = []string{manifest.Name + ".status"}
	}

	return manifest, nil
}

// loadStatusFiles loads every status file of a suite that exists.
func loadStatusFiles(fs adapter.SuiteFSAdapter, dir string, files []string, loader *status.Loader) error {
	for _, name := range files {
		path := fs.JoinPath(dir, name)
		if _, err := fs.FileInfo(path); err != nil {
			continue
		}

		if err := loader.LoadFile(string(path)); err != nil {
			return err
		}
	}

	return nil
}
