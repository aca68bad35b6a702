package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/portpause/internal/tui"
	"github.com/pranshuparmar/portpause/pkg/model"
)

type fakeSystem struct {
	endpoints []model.Endpoint
	ok        bool
	suspended []int
	resumed   []int
}

func (f *fakeSystem) ListListening() []model.Endpoint { return f.endpoints }

func (f *fakeSystem) FindPIDForPort(port int) (int, bool) {
	for _, ep := range f.endpoints {
		if ep.Port == port {
			return ep.PID, true
		}
	}
	return 0, false
}

func (f *fakeSystem) Apply(pid int, action model.Action) bool {
	switch action {
	case model.ActionPause:
		f.suspended = append(f.suspended, pid)
	case model.ActionResume:
		f.resumed = append(f.resumed, pid)
	default:
		return false
	}
	return f.ok
}

// isolate keeps the developer's own config out of the tests.
func isolate(t *testing.T, sys *fakeSystem) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")

	prevSys, prevStart := newSystem, startTUI
	newSystem = func() System { return sys }
	t.Cleanup(func() {
		newSystem, startTUI = prevSys, prevStart
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestControlByPortPause(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 3000, PID: 4242}}, ok: true}
	var b bytes.Buffer

	ok := ControlByPort(&b, sys, 3000, model.ActionPause)
	assert.True(t, ok)
	assert.Equal(t, []int{4242}, sys.suspended)
	assert.Equal(t, "Found PID 4242 on port 3000. Action: pause\nProcess Paused.\n", b.String())
}

func TestControlByPortResumeFailure(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 3000, PID: 4242}}, ok: false}
	var b bytes.Buffer

	ok := ControlByPort(&b, sys, 3000, model.ActionResume)
	assert.False(t, ok)
	assert.Equal(t, []int{4242}, sys.resumed)
	assert.Equal(t, "Found PID 4242 on port 3000. Action: resume\nFailed to resume.\n", b.String())
}

func TestControlByPortUnknownAction(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 3000, PID: 4242}}, ok: true}
	var b bytes.Buffer

	ok := ControlByPort(&b, sys, 3000, model.Action("kill"))
	assert.False(t, ok)
	assert.Empty(t, sys.suspended)
	assert.Empty(t, sys.resumed)
	assert.Equal(t, "Found PID 4242 on port 3000. Action: kill\nFailed to kill.\n", b.String())
}

func TestControlByPortNotFound(t *testing.T) {
	sys := &fakeSystem{ok: true}
	var b bytes.Buffer

	ok := ControlByPort(&b, sys, 3000, model.ActionPause)
	assert.False(t, ok)
	assert.Empty(t, sys.suspended)
	assert.Equal(t, "Error: Could not find PID for port 3000\n", b.String())
}

func TestPauseCommand(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 8080, PID: 1234}}, ok: true}
	isolate(t, sys)

	out, err := run(t, "pause", "8080")
	require.NoError(t, err)
	assert.Contains(t, out, "Found PID 1234 on port 8080. Action: pause")
	assert.Contains(t, out, "Process Paused.")
	assert.Equal(t, []int{1234}, sys.suspended)
}

func TestMissingPortDoesNotFail(t *testing.T) {
	sys := &fakeSystem{ok: true}
	isolate(t, sys)

	out, err := run(t, "resume", "9999")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not find PID for port 9999")
	assert.Empty(t, sys.resumed)
}

func TestControlCommand(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 8080, PID: 1234}}, ok: true}
	isolate(t, sys)

	out, err := run(t, "control", "8080", "resume")
	require.NoError(t, err)
	assert.Contains(t, out, "Process Resumed.")

	_, err = run(t, "control", "8080", "kill")
	require.Error(t, err)
}

func TestInvalidPort(t *testing.T) {
	isolate(t, &fakeSystem{})

	for _, arg := range []string{"abc", "0", "70000"} {
		_, err := run(t, "pause", arg)
		require.Error(t, err, arg)
	}
}

func TestListCommand(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 8080, PID: 1234, Protocol: "TCP", Address: "0.0.0.0", Command: "nginx"}}}
	isolate(t, sys)

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "nginx (pid 1234)")

	out, err = run(t, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"port": 8080`)
	assert.Contains(t, out, `"pid": 1234`)
}

func TestRootStartsTUIWithConfig(t *testing.T) {
	sys := &fakeSystem{}
	isolate(t, sys)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mouse: false\ncolors:\n  paused: \"11\"\n"), 0o644))

	var got tui.Options
	startTUI = func(opts tui.Options, enum tui.Enumerator, ctrl tui.Controller) error {
		got = opts
		assert.Equal(t, sys, enum)
		assert.Equal(t, sys, ctrl)
		return nil
	}

	_, err := run(t, "--config", path)
	require.NoError(t, err)
	assert.False(t, got.Mouse)
	assert.True(t, got.AltScreen)
	assert.Equal(t, "11", got.Colors.Paused)
	assert.Equal(t, tui.DefaultColors().Running, got.Colors.Running)
	assert.NotNil(t, got.Logger)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	isolate(t, &fakeSystem{})

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogFileFlag(t *testing.T) {
	sys := &fakeSystem{endpoints: []model.Endpoint{{Port: 8080, PID: 1234}}, ok: true}
	isolate(t, sys)

	path := filepath.Join(t.TempDir(), "portpause.log")
	_, err := run(t, "--log-file", path, "pause", "8080")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pause port 8080: success=true")
}

func TestVersionCommand(t *testing.T) {
	isolate(t, &fakeSystem{})
	prevV, prevC, prevD := version, commit, buildDate
	t.Cleanup(func() { version, commit, buildDate = prevV, prevC, prevD })

	SetVersionBuildCommitString("v1.2.3", "abc1234", "2026-10-18")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portpause v1.2.3 (commit abc1234, built 2026-10-18)\n", out)
}
