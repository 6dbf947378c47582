// Package adapter contains process and filesystem adapters for the verdict CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "gooze.dev/pkg/verdict/internal/model"
)

// ErrWorkspaceNotFound is returned when no parent directory holds the marker file.
var ErrWorkspaceNotFound = errors.New("workspace root not found")

// SuiteFSAdapter hides the filesystem operations suite discovery relies on,
// so the suite kinds can be exercised against any directory tree.
type SuiteFSAdapter interface {
	// Glob returns the files under root matching a doublestar pattern, as
	// slash-separated paths relative to root, sorted.
	Glob(root m.Path, pattern string) ([]string, error)

	// Match reports whether a slash-separated relative path matches pattern.
	Match(pattern, rel string) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindWorkspaceRoot walks up from start until a directory holding marker is found.
	FindWorkspaceRoot(start m.Path, marker string) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSuiteFSAdapter implements SuiteFSAdapter on the local filesystem.
type LocalSuiteFSAdapter struct{}

// NewLocalSuiteFSAdapter constructs a LocalSuiteFSAdapter.
func NewLocalSuiteFSAdapter() *LocalSuiteFSAdapter {
	return &LocalSuiteFSAdapter{}
}

// Glob implements SuiteFSAdapter.
func (a *LocalSuiteFSAdapter) Glob(root m.Path, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, root, err)
	}

	sort.Strings(matches)

	return matches, nil
}

// Match implements SuiteFSAdapter. A malformed pattern matches nothing.
func (a *LocalSuiteFSAdapter) Match(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, rel)

	return err == nil && ok
}

// ReadFile loads file contents from disk.
func (a *LocalSuiteFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSuiteFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindWorkspaceRoot implements SuiteFSAdapter.
func (a *LocalSuiteFSAdapter) FindWorkspaceRoot(start m.Path, marker string) (m.Path, error) {
	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s above %s", ErrWorkspaceNotFound, marker, start)
		}

		dir = parent
	}
}

// JoinPath joins path elements into a single path.
func (a *LocalSuiteFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
