package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/pkg"
)

const (
	initialPollInterval = 100 * time.Microsecond
	maxPollInterval     = 100 * time.Millisecond
	pollBackoff         = 1.25
	// terminateGrace is how long a terminated child gets before it is killed.
	terminateGrace = 500 * time.Millisecond
)

// ErrEmptyCommand is returned for a command with no argv.
var ErrEmptyCommand = errors.New("empty command")

// CommandRunner runs one command under a deadline and captures its output.
type CommandRunner interface {
	// Execute runs command and waits at most timeout for it; a timeout of
	// zero or less waits indefinitely. A command that overruns its deadline
	// is terminated and reported with TimedOut set; that is not an error.
	// When ctx is cancelled the child is terminated and ctx.Err() is
	// returned together with whatever output it produced.
	Execute(ctx context.Context, command []string, timeout time.Duration) (m.CommandOutput, error)
}

// LocalCommandRunner runs commands as local child processes.
type LocalCommandRunner struct {
	captureDir string
}

// NewLocalCommandRunner returns a runner that keeps output captures in
// captureDir, or the system temp directory when captureDir is empty.
func NewLocalCommandRunner(captureDir string) *LocalCommandRunner {
	return &LocalCommandRunner{captureDir: captureDir}
}

type stopReason int

const (
	exited stopReason = iota
	deadlineExceeded
	cancelled
)

// Execute implements CommandRunner.
func (r *LocalCommandRunner) Execute(ctx context.Context, command []string, timeout time.Duration) (m.CommandOutput, error) {
	if len(command) == 0 {
		return m.CommandOutput{}, ErrEmptyCommand
	}

	stdout, err := pkg.NewCapture(r.captureDir, "stdout-*")
	if err != nil {
		return m.CommandOutput{}, err
	}
	defer stdout.Close()

	stderr, err := pkg.NewCapture(r.captureDir, "stderr-*")
	if err != nil {
		return m.CommandOutput{}, err
	}
	defer stderr.Close()

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdout = stdout.File()
	cmd.Stderr = stderr.File()
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		slog.Debug("Failed to start command", "command", command, "error", err)
		return m.CommandOutput{}, fmt.Errorf("start %s: %w", command[0], err)
	}

	// done is the liveness source: supervise polls it without blocking in
	// place of a WNOHANG wait.
	done := make(chan struct{})

	go func() {
		// The exit status is read from ProcessState; Wait's error adds nothing.
		_ = cmd.Wait()

		close(done)
	}()

	reason := supervise(ctx, done, timeout)
	if reason != exited {
		slog.Debug("Terminating command", "command", command, "pid", cmd.Process.Pid, "timed_out", reason == deadlineExceeded)
		stop(cmd, done)
	}

	output := m.CommandOutput{
		ExitCode: exitCode(cmd.ProcessState),
		TimedOut: reason == deadlineExceeded,
	}

	if output.Stdout, err = stdout.ReadAll(); err != nil {
		return output, err
	}

	if output.Stderr, err = stderr.ReadAll(); err != nil {
		return output, err
	}

	if reason == cancelled {
		return output, ctx.Err()
	}

	return output, nil
}

// supervise polls done with a growing sleep until the child exits, the
// deadline passes or ctx is cancelled.
func supervise(ctx context.Context, done <-chan struct{}, timeout time.Duration) stopReason {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	interval := initialPollInterval

	for {
		select {
		case <-done:
			return exited
		default:
		}

		if ctx.Err() != nil {
			return cancelled
		}

		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return deadlineExceeded
		}

		time.Sleep(interval)

		interval = min(time.Duration(float64(interval)*pollBackoff), maxPollInterval)
	}
}

// stop terminates the child and blocks until it has been reaped.
func stop(cmd *exec.Cmd, done <-chan struct{}) {
	if err := terminate(cmd); err != nil {
		slog.Debug("Failed to terminate command", "pid", cmd.Process.Pid, "error", err)
	}

	select {
	case <-done:
		return
	case <-time.After(terminateGrace):
	}

	if err := kill(cmd); err != nil {
		slog.Debug("Failed to kill command", "pid", cmd.Process.Pid, "error", err)
	}

	<-done
}
