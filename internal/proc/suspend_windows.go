//go:build windows

package proc

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const processSuspendResume = 0x0800

var (
	ntdll         = windows.NewLazySystemDLL("ntdll.dll")
	procNtSuspend = ntdll.NewProc("NtSuspendProcess")
	procNtResume  = ntdll.NewProc("NtResumeProcess")
)

func suspendProcess(pid int) error { return callOnProcess(pid, procNtSuspend) }
func resumeProcess(pid int) error  { return callOnProcess(pid, procNtResume) }

func callOnProcess(pid int, fn *windows.LazyProc) error {
	h, err := windows.OpenProcess(processSuspendResume, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(h)

	if err := fn.Find(); err != nil {
		return fmt.Errorf("%s: %w", fn.Name, err)
	}
	status, _, _ := fn.Call(uintptr(h))
	if status != 0 {
		return fmt.Errorf("%s on PID %d: NTSTATUS 0x%08X", fn.Name, pid, uint32(status))
	}
	return nil
}
