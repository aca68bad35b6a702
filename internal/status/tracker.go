// Package status remembers which processes this session has suspended.
// The OS does not report a stopped process through the socket table, so the
// tracker is the only record. It is advisory: it annotates what the
// enumerator reports and never filters it.
package status

import (
	"sort"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// Tracker is not safe for concurrent use; it belongs to the UI loop.
type Tracker struct {
	entries map[int]model.Status
}

func New() *Tracker {
	return &Tracker{entries: make(map[int]model.Status)}
}

func (t *Tracker) Set(pid int, s model.Status) {
	t.entries[pid] = s
}

// Get returns StatusRunning for PIDs never set.
func (t *Tracker) Get(pid int) model.Status {
	return t.entries[pid]
}

// Paused lists the PIDs currently marked paused, ascending.
func (t *Tracker) Paused() []int {
	var pids []int
	for pid, s := range t.entries {
		if s == model.StatusPaused {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)
	return pids
}
