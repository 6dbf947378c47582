package suite

import (
	"context"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"gooze.dev/pkg/verdict/internal/adapter"
	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

// KindFiles is a suite whose tests are files in its directory.
const KindFiles = "files"

const expectedOutputExt = ".out"

var defaultFilesCommand = []string{"{vm}", "{file}"}

// FilesSuite treats every file matched by the manifest globs as a test.
// The test path is the file path relative to the suite without extension;
// a sibling file with the .out extension holds the expected stdout.
type FilesSuite struct {
	name     string
	dir      string
	manifest Manifest
	sc       Context
}

// NewFilesSuite is the Factory for KindFiles.
func NewFilesSuite(dir string, manifest Manifest, sc Context) (Suite, error) {
	if len(manifest.Tests) == 0 {
		manifest.Tests = []string{"**/*"}
	}

	if len(manifest.Command) == 0 {
		manifest.Command = defaultFilesCommand
	}

	return &FilesSuite{name: manifest.Name, dir: dir, manifest: manifest, sc: sc}, nil
}

// Name implements Suite.
func (s *FilesSuite) Name() string {
	return s.name
}

// ListTests implements Suite.
func (s *FilesSuite) ListTests(ctx context.Context, current []string, filter status.Path, mode string) ([]*m.TestCase, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}

	var cases []*m.TestCase

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stem := strings.TrimSuffix(rel, path.Ext(rel))

		testPath := append(slices.Clone(current), strings.Split(stem, "/")...)
		if !filter.Matches(testPath) {
			continue
		}

		file := filepath.Join(s.dir, filepath.FromSlash(rel))

		tc := &m.TestCase{
			Path: testPath,
			Command: expand(s.manifest.Command, map[string]string{
				"vm":   s.sc.VM(mode),
				"file": file,
				"dir":  s.dir,
			}),
			Negative: s.negative(rel),
			Suite:    s.name,
			Mode:     mode,
		}

		if expected, err := s.sc.FS.ReadFile(s.sc.FS.JoinPath(s.dir, filepath.FromSlash(stem+expectedOutputExt))); err == nil {
			text := string(expected)
			tc.ExpectedOutput = &text
		}

		cases = append(cases, tc)
	}

	return cases, nil
}

// files returns the distinct test files in sorted order.
func (s *FilesSuite) files() ([]string, error) {
	seen := make(map[string]bool)

	var files []string

	for _, pattern := range s.manifest.Tests {
		matches, err := s.sc.FS.Glob(m.Path(s.dir), pattern)
		if err != nil {
			return nil, err
		}

		for _, rel := range matches {
			if seen[rel] || s.internal(rel) || s.excluded(rel) {
				continue
			}

			seen[rel] = true
			files = append(files, rel)
		}
	}

	slices.Sort(files)

	return files, nil
}

// internal reports files that belong to the suite machinery, not its tests.
func (s *FilesSuite) internal(rel string) bool {
	if rel == ManifestFile || path.Ext(rel) == expectedOutputExt {
		return true
	}

	return slices.Contains(s.manifest.Status, rel)
}

func (s *FilesSuite) excluded(rel string) bool {
	return matchAny(s.sc.FS, s.manifest.Exclude, rel)
}

func (s *FilesSuite) negative(rel string) bool {
	return matchAny(s.sc.FS, s.manifest.Negative, rel)
}

// BuildRequirements implements Suite.
func (s *FilesSuite) BuildRequirements(status.Path) []string {
	return s.manifest.Build
}

// LoadStatus implements Suite.
func (s *FilesSuite) LoadStatus(loader *status.Loader) error {
	return loadStatusFiles(s.sc.FS, s.dir, s.manifest.Status, loader)
}

func matchAny(fs adapter.SuiteFSAdapter, patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if fs.Match(pattern, rel) {
			return true
		}
	}

	return false
}
