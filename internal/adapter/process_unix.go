//go:build !windows

package adapter

import (
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup puts the child in its own group so that terminate reaches
// everything it spawned.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminate(cmd *exec.Cmd) error {
	return signalGroup(cmd, syscall.SIGTERM)
}

func kill(cmd *exec.Cmd) error {
	return signalGroup(cmd, syscall.SIGKILL)
}

func signalGroup(cmd *exec.Cmd, sig syscall.Signal) error {
	if err := syscall.Kill(-cmd.Process.Pid, sig); err != nil {
		return cmd.Process.Signal(sig)
	}

	return nil
}

// exitCode reports -signal for a child killed by a signal.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}

	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}

	return state.ExitCode()
}
