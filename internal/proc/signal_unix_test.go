//go:build linux || darwin || freebsd

package proc

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func TestSuspendResumeChild(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid

	assert.True(t, Suspend(pid))
	// stopping an already stopped process still succeeds
	assert.True(t, Suspend(pid))
	assert.True(t, Resume(pid))

	require.NoError(t, cmd.Process.Kill())
	_ = cmd.Wait()

	assert.False(t, Suspend(pid))
	assert.False(t, Resume(pid))
}

func TestSystemApplyChild(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})
	pid := cmd.Process.Pid

	var sys System
	assert.True(t, sys.Apply(pid, model.ActionPause))
	assert.True(t, sys.Apply(pid, model.ActionResume))
	assert.False(t, sys.Apply(pid, model.Action("kill")))
}
