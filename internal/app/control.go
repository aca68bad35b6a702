package app

import (
	"fmt"
	"io"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// System is everything the commands need from the OS.
type System interface {
	ListListening() []model.Endpoint
	FindPIDForPort(port int) (int, bool)
	Apply(pid int, action model.Action) bool
}

// ControlByPort resolves port to its owning process and applies action,
// reporting each step to w. It reports whether the action succeeded; a port
// with no listener is reported and nothing is done.
func ControlByPort(w io.Writer, sys System, port int, action model.Action) bool {
	pid, ok := sys.FindPIDForPort(port)
	if !ok {
		fmt.Fprintf(w, "Error: Could not find PID for port %d\n", port)
		return false
	}

	fmt.Fprintf(w, "Found PID %d on port %d. Action: %s\n", pid, port, action)

	ok = sys.Apply(pid, action)
	switch {
	case ok && action == model.ActionPause:
		fmt.Fprintln(w, "Process Paused.")
	case ok && action == model.ActionResume:
		fmt.Fprintln(w, "Process Resumed.")
	default:
		fmt.Fprintf(w, "Failed to %s.\n", action)
	}
	return ok
}
