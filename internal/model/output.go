package model

import (
	"strings"
	"time"
)

// CommandOutput is what one supervised command produced.
type CommandOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// TestOutput is the result of running a classified test.
type TestOutput struct {
	Test    ClassifiedTest
	Command []string
	Output  CommandOutput
	Elapsed time.Duration
	Err     error // spawn or cancellation error, not a test failure
}

// ExecutionFailed reports whether the command itself failed.
func (to TestOutput) ExecutionFailed() bool {
	if to.Output.ExitCode != 0 {
		return true
	}

	return to.OutputMismatch()
}

// OutputMismatch reports whether the case expected a stdout that was not produced.
func (to TestOutput) OutputMismatch() bool {
	if to.Test.Case == nil || to.Test.Case.ExpectedOutput == nil {
		return false
	}

	return normalizeOutput(to.Output.Stdout) != normalizeOutput(*to.Test.Case.ExpectedOutput)
}

// HasFailed applies negative-test semantics to ExecutionFailed.
// A case that could not be started has always failed.
func (to TestOutput) HasFailed() bool {
	if to.Err != nil {
		return true
	}

	failed := to.ExecutionFailed()
	if to.Test.Case != nil && to.Test.Case.Negative {
		return !failed
	}

	return failed
}

// Unexpected reports whether the verdict is outside the expected outcomes.
// A case that could not be started is always unexpected.
func (to TestOutput) Unexpected() bool {
	if to.Err != nil {
		return true
	}

	outcome := Pass
	if to.HasFailed() {
		outcome = Fail
	}

	return !to.Test.Outcomes.Contains(outcome)
}

func normalizeOutput(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
