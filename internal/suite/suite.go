// Package suite discovers test cases. A suite is a directory with a
// suite.yaml manifest naming one of the kinds known to a Registry.
package suite

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"gooze.dev/pkg/verdict/internal/adapter"
	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

// Suite lists test cases and contributes status rules and build requirements.
type Suite interface {
	Name() string
	// ListTests returns the cases under current whose full path matches filter.
	ListTests(ctx context.Context, current []string, filter status.Path, mode string) ([]*m.TestCase, error)
	// BuildRequirements names the build targets the suite needs.
	BuildRequirements(filter status.Path) []string
	// LoadStatus feeds the suite's status files to loader.
	LoadStatus(loader *status.Loader) error
}

// Modes are the build modes a VM binary can be built in.
var Modes = []string{"debug", "release"}

var modeSuffix = map[string]string{
	"debug":   "_g",
	"release": "",
}

// ValidMode reports whether mode is one of Modes.
func ValidMode(mode string) bool {
	return slices.Contains(Modes, mode)
}

// Context carries what every suite needs to list and run its tests.
type Context struct {
	Workspace  string
	Buildspace string
	// VMName is the VM binary name inside Buildspace, without mode suffix.
	VMName  string
	Timeout time.Duration
	Runner  adapter.CommandRunner
	FS      adapter.SuiteFSAdapter
}

// VM returns the path of the VM binary built for mode.
func (c Context) VM(mode string) string {
	name := c.VMName
	if name == "" {
		name = "shell"
	}

	vm := filepath.Join(c.Buildspace, name+modeSuffix[mode])
	if runtime.GOOS == "windows" {
		vm += ".exe"
	}

	return vm
}

// expand replaces {key} tokens in every element of template.
func expand(template []string, vars map[string]string) []string {
	pairs := make([]string, 0, 2*len(vars))
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}

	replacer := strings.NewReplacer(pairs...)

	result := make([]string, len(template))
	for i, token := range template {
		result[i] = replacer.Replace(token)
	}

	return result
}
