package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func TestGetDefaultsToRunning(t *testing.T) {
	tr := New()
	for _, pid := range []int{1, 1234, 99999} {
		assert.Equal(t, model.StatusRunning, tr.Get(pid))
	}
	assert.Empty(t, tr.Paused())
}

func TestSetPausedUntilResumed(t *testing.T) {
	tr := New()
	tr.Set(1234, model.StatusPaused)
	assert.Equal(t, model.StatusPaused, tr.Get(1234))
	assert.Equal(t, model.StatusPaused, tr.Get(1234))
	assert.Equal(t, model.StatusRunning, tr.Get(4321))

	tr.Set(1234, model.StatusRunning)
	assert.Equal(t, model.StatusRunning, tr.Get(1234))
}

func TestPausedSorted(t *testing.T) {
	tr := New()
	tr.Set(30, model.StatusPaused)
	tr.Set(10, model.StatusPaused)
	tr.Set(20, model.StatusRunning)
	assert.Equal(t, []int{10, 30}, tr.Paused())
}
