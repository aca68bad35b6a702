package model

import (
	"fmt"
	"strings"
)

// Status is the last known run state of a process in this session.
// The zero value is StatusRunning.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
)

func (s Status) String() string {
	if s == StatusPaused {
		return "paused"
	}
	return "running"
}

// Label is the bracketed form shown next to each port.
func (s Status) Label() string {
	return "[" + strings.ToUpper(s.String()) + "]"
}

type Action string

const (
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
)

func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionPause:
		return ActionPause, nil
	case ActionResume:
		return ActionResume, nil
	}
	return "", fmt.Errorf("unknown action %q (want pause or resume)", s)
}

// Result is the status a successful action leaves the process in.
func (a Action) Result() Status {
	if a == ActionPause {
		return StatusPaused
	}
	return StatusRunning
}
