package proc

import (
	"os"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// Suspend stops every thread of pid. It reports false for anything the OS
// refuses, including a PID that no longer exists.
func Suspend(pid int) bool {
	if !controllable(pid) {
		return false
	}
	if err := suspendProcess(pid); err != nil {
		logger.Printf("[proc] suspend: %v", err)
		return false
	}
	return true
}

// Resume continues a process stopped with Suspend.
func Resume(pid int) bool {
	if !controllable(pid) {
		return false
	}
	if err := resumeProcess(pid); err != nil {
		logger.Printf("[proc] resume: %v", err)
		return false
	}
	return true
}

// Apply runs action against pid.
func Apply(pid int, action model.Action) bool {
	switch action {
	case model.ActionPause:
		return Suspend(pid)
	case model.ActionResume:
		return Resume(pid)
	}
	return false
}

// PID 0 and negative values address process groups when signalled, and
// stopping ourselves would freeze the terminal.
func controllable(pid int) bool {
	if pid <= 0 || pid == os.Getpid() {
		logger.Printf("[proc] refusing to control PID %d", pid)
		return false
	}
	return true
}

// System is the live OS: the socket table and the suspend/resume primitive.
type System struct{}

func (System) ListListening() []model.Endpoint         { return ListListening() }
func (System) FindPIDForPort(port int) (int, bool)     { return FindPIDForPort(port) }
func (System) Apply(pid int, action model.Action) bool { return Apply(pid, action) }
