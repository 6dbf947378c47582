package suite

import (
	"context"
	"fmt"
	"slices"
	"strings"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

// KindListed is a suite whose tests are enumerated by a binary.
const KindListed = "listed"

var defaultListedCommand = []string{"{binary}", "{test}"}

// ListedSuite asks its binary for the test names with --list, one per line,
// and runs each test as binary plus name.
type ListedSuite struct {
	name     string
	dir      string
	manifest Manifest
	sc       Context
}

// NewListedSuite is the Factory for KindListed.
func NewListedSuite(dir string, manifest Manifest, sc Context) (Suite, error) {
	if manifest.Binary == "" {
		manifest.Binary = "{vm}"
	}

	if len(manifest.Command) == 0 {
		manifest.Command = defaultListedCommand
	}

	return &ListedSuite{name: manifest.Name, dir: dir, manifest: manifest, sc: sc}, nil
}

// Name implements Suite.
func (s *ListedSuite) Name() string {
	return s.name
}

func (s *ListedSuite) binary(mode string) string {
	return expand([]string{s.manifest.Binary}, map[string]string{
		"vm":         s.sc.VM(mode),
		"dir":        s.dir,
		"buildspace": s.sc.Buildspace,
	})[0]
}

// ListTests implements Suite.
func (s *ListedSuite) ListTests(ctx context.Context, current []string, filter status.Path, mode string) ([]*m.TestCase, error) {
	binary := s.binary(mode)

	output, err := s.sc.Runner.Execute(ctx, []string{binary, "--list"}, s.sc.Timeout)
	if err != nil {
		return nil, fmt.Errorf("list tests of %s: %w", s.name, err)
	}

	if output.ExitCode != 0 || output.TimedOut {
		return nil, fmt.Errorf("list tests of %s: %s --list exited with %d: %s", s.name, binary, output.ExitCode, strings.TrimSpace(output.Stderr))
	}

	var cases []*m.TestCase

	for _, line := range strings.Split(output.Stdout, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		testPath := append(slices.Clone(current), strings.Split(name, "/")...)
		if !filter.Matches(testPath) {
			continue
		}

		cases = append(cases, &m.TestCase{
			Path: testPath,
			Command: expand(s.manifest.Command, map[string]string{
				"binary": binary,
				"test":   name,
				"vm":     s.sc.VM(mode),
				"dir":    s.dir,
			}),
			Suite: s.name,
			Mode:  mode,
		})
	}

	return cases, nil
}

// BuildRequirements implements Suite.
func (s *ListedSuite) BuildRequirements(status.Path) []string {
	return s.manifest.Build
}

// LoadStatus implements Suite.
func (s *ListedSuite) LoadStatus(loader *status.Loader) error {
	return loadStatusFiles(s.sc.FS, s.dir, s.manifest.Status, loader)
}
