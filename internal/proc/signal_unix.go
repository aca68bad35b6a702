//go:build linux || darwin || freebsd

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func suspendProcess(pid int) error { return sendSignal(pid, unix.SIGSTOP) }
func resumeProcess(pid int) error  { return sendSignal(pid, unix.SIGCONT) }

func sendSignal(pid int, sig unix.Signal) error {
	if err := unix.Kill(pid, sig); err != nil {
		return fmt.Errorf("signal %v to PID %d failed: %w", sig, pid, err)
	}
	return nil
}
