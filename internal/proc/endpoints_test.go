package proc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type fakeTable struct {
	rows []model.Endpoint
	err  error
}

func (f fakeTable) listListening() ([]model.Endpoint, error) { return f.rows, f.err }

func withTable(t *testing.T, tbl socketTable) {
	t.Helper()
	prev := table
	table = tbl
	t.Cleanup(func() { table = prev })
}

func TestListListeningDedupes(t *testing.T) {
	withTable(t, fakeTable{rows: []model.Endpoint{
		{Port: 8080, PID: 1234},
		{Port: 8080, PID: 5678},
		{Port: 9090, PID: 42},
	}})

	got := ListListening()
	assert.Equal(t, []model.Endpoint{{Port: 8080, PID: 1234}, {Port: 9090, PID: 42}}, got)
}

func TestListListeningFailureIsEmpty(t *testing.T) {
	withTable(t, fakeTable{err: errors.New("netstat: executable file not found")})

	got := ListListening()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindPIDForPort(t *testing.T) {
	withTable(t, fakeTable{rows: []model.Endpoint{
		{Port: 80, PID: 10},
		{Port: 8080, PID: 1234},
		{Port: 8080, PID: 5678},
	}})

	pid, ok := FindPIDForPort(8080)
	require.True(t, ok)
	assert.Equal(t, 1234, pid)

	// exact match only, 80 must not pick up 8080
	pid, ok = FindPIDForPort(80)
	require.True(t, ok)
	assert.Equal(t, 10, pid)

	_, ok = FindPIDForPort(3000)
	assert.False(t, ok)

	_, ok = FindPIDForPort(0)
	assert.False(t, ok)
}

func TestFindPIDForPortFailure(t *testing.T) {
	withTable(t, fakeTable{err: errors.New("permission denied")})

	_, ok := FindPIDForPort(8080)
	assert.False(t, ok)
}
