package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gooze.dev/pkg/verdict/internal/adapter"
)

// DefaultBuildCommand builds the requirements with scons. {workspace} and
// {modes} are substituted; the requirements are appended.
var DefaultBuildCommand = []string{"scons", "-Y", "{workspace}", "mode={modes}"}

// ErrBuildFailed is returned when the build command exits non-zero.
var ErrBuildFailed = errors.New("build failed")

// Builder builds the targets the selected suites require.
type Builder interface {
	Build(ctx context.Context, requirements []string, modes []string) error
}

type commandBuilder struct {
	runner    adapter.CommandRunner
	workspace string
	command   []string
}

// NewBuilder returns a Builder running command through runner. An empty
// command means DefaultBuildCommand.
func NewBuilder(runner adapter.CommandRunner, workspace string, command []string) Builder {
	if len(command) == 0 {
		command = DefaultBuildCommand
	}

	return &commandBuilder{
		runner:    runner,
		workspace: workspace,
		command:   command,
	}
}

// Build runs the build command without a deadline. Duplicate requirements
// are dropped; nothing runs when none remain.
func (b *commandBuilder) Build(ctx context.Context, requirements []string, modes []string) error {
	reqs := dedupe(requirements)
	if len(reqs) == 0 {
		return nil
	}

	replacer := strings.NewReplacer("{workspace}", b.workspace, "{modes}", strings.Join(modes, ","))

	command := make([]string, 0, len(b.command)+len(reqs))
	for _, token := range b.command {
		command = append(command, replacer.Replace(token))
	}

	command = append(command, reqs...)

	slog.Info("Building requirements", "command", command)

	output, err := b.runner.Execute(ctx, command, 0)
	if err != nil {
		slog.Error("Failed to run build", "command", command, "error", err)
		return fmt.Errorf("build: %w", err)
	}

	slog.Debug("Build finished", "exit_code", output.ExitCode, "stdout", output.Stdout)

	if output.ExitCode != 0 {
		slog.Error("Build exited non-zero", "exit_code", output.ExitCode, "stderr", output.Stderr)
		return fmt.Errorf("%w: exit code %d: %s", ErrBuildFailed, output.ExitCode, strings.TrimSpace(output.Stderr))
	}

	return nil
}

// dedupe keeps the first occurrence of every element.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}
