// Package pkg provides utilities for verdict.
package pkg

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Capture is a temp-file buffer a child process writes its output into.
// The file is handed to the child directly, so no copy goroutine is needed
// and a child that outlives its parent pipe cannot block the reader.
type Capture interface {
	// File is passed as the child's stdout or stderr.
	File() *os.File
	Path() string
	// ReadAll returns everything written so far.
	ReadAll() (string, error)
	// Close closes and removes the file.
	Close() error
}

type captureImpl struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	closed bool
}

// NewCapture creates a capture file in dir; an empty dir means os.TempDir.
func NewCapture(dir, pattern string) (Capture, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("failed to create capture directory", "path", dir, "error", err)
			return nil, fmt.Errorf("failed to create capture directory: %w", err)
		}
	}

	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		slog.Error("failed to create capture file", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}

	slog.Debug("created capture", "path", file.Name())

	return &captureImpl{path: file.Name(), file: file}, nil
}

// File implements Capture.
func (c *captureImpl) File() *os.File {
	return c.file
}

// Path implements Capture.
func (c *captureImpl) Path() string {
	return c.path
}

// ReadAll implements Capture.
func (c *captureImpl) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", fmt.Errorf("capture %s is closed", c.path)
	}

	file, err := os.Open(c.path)
	if err != nil {
		slog.Error("failed to open capture", "path", c.path, "error", err)
		return "", fmt.Errorf("failed to open capture: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close capture reader", "path", c.path, "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read capture", "path", c.path, "error", err)
		return "", fmt.Errorf("failed to read capture: %w", err)
	}

	return string(data), nil
}

// Close implements Capture.
func (c *captureImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	closeErr := c.file.Close()
	if closeErr != nil {
		slog.Error("failed to close capture", "path", c.path, "error", closeErr)
	}

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove capture", "path", c.path, "error", err)
		return fmt.Errorf("failed to remove capture: %w", err)
	}

	slog.Debug("removed capture", "path", c.path)

	return closeErr
}
