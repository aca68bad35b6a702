package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusZeroValueIsRunning(t *testing.T) {
	var s Status
	assert.Equal(t, StatusRunning, s)
	assert.Equal(t, "[RUNNING]", s.Label())
	assert.Equal(t, "[PAUSED]", StatusPaused.Label())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("Pause")
	require.NoError(t, err)
	assert.Equal(t, ActionPause, a)
	assert.Equal(t, StatusPaused, a.Result())

	a, err = ParseAction(" resume ")
	require.NoError(t, err)
	assert.Equal(t, ActionResume, a)
	assert.Equal(t, StatusRunning, a.Result())

	_, err = ParseAction("kill")
	require.Error(t, err)
}
