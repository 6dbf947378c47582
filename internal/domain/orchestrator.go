package domain

import (
	"context"
	"log/slog"
	"time"

	"gooze.dev/pkg/verdict/internal/adapter"
	m "gooze.dev/pkg/verdict/internal/model"
)

// Orchestrator runs one classified test under the supervisor and turns
// what happened into a TestOutput.
type Orchestrator interface {
	RunTest(ctx context.Context, test m.ClassifiedTest) m.TestOutput
}

type orchestrator struct {
	runner  adapter.CommandRunner
	timeout time.Duration
}

// NewOrchestrator constructs an Orchestrator that gives every test at most
// timeout to finish.
func NewOrchestrator(runner adapter.CommandRunner, timeout time.Duration) Orchestrator {
	return &orchestrator{
		runner:  runner,
		timeout: timeout,
	}
}

func (o *orchestrator) RunTest(ctx context.Context, test m.ClassifiedTest) m.TestOutput {
	result := m.TestOutput{Test: test}
	if test.Case != nil {
		result.Command = test.Case.Command
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	output, err := o.runner.Execute(ctx, result.Command, o.timeout)
	result.Elapsed = time.Since(start)
	result.Output = output
	result.Err = err

	if err != nil {
		slog.Debug("Test did not complete", "test", test.Label(), "error", err)
		return result
	}

	slog.Debug("Test completed",
		"test", test.Label(),
		"exit_code", output.ExitCode,
		"timed_out", output.TimedOut,
		"elapsed", result.Elapsed,
	)

	return result
}
