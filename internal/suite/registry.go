package suite

import (
	"fmt"
	"log/slog"
	"path"
	"slices"

	m "gooze.dev/pkg/verdict/internal/model"
)

// Factory builds a suite of one kind from its directory and manifest.
type Factory func(dir string, manifest Manifest, sc Context) (Suite, error)

// Registry maps suite kinds to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry knows the files and listed kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindFiles, NewFilesSuite)
	r.Register(KindListed, NewListedSuite)

	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind string, factory Factory) {
	r.factories[kind] = factory
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// Open reads dir's manifest and instantiates the kind it names.
func (r *Registry) Open(dir string, sc Context) (Suite, error) {
	manifest, err := ReadManifest(sc.FS, dir)
	if err != nil {
		return nil, err
	}

	factory, ok := r.factories[manifest.Kind]
	if !ok {
		return nil, fmt.Errorf("suite %s: unknown kind %q (known: %v)", dir, manifest.Kind, r.Kinds())
	}

	slog.Debug("Opening suite", "dir", dir, "name", manifest.Name, "kind", manifest.Kind)

	return factory(dir, manifest, sc)
}

// Discover opens every direct subdirectory of root holding a manifest.
func (r *Registry) Discover(root string, sc Context) ([]Suite, error) {
	manifests, err := sc.FS.Glob(m.Path(root), "*/"+ManifestFile)
	if err != nil {
		return nil, err
	}

	suites := make([]Suite, 0, len(manifests))

	for _, rel := range manifests {
		s, err := r.Open(string(sc.FS.JoinPath(root, path.Dir(rel))), sc)
		if err != nil {
			return nil, err
		}

		suites = append(suites, s)
	}

	return suites, nil
}
