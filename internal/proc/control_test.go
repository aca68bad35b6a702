package proc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func TestControlRefusesUnsafePIDs(t *testing.T) {
	for _, pid := range []int{0, -1, os.Getpid()} {
		assert.False(t, Suspend(pid), "suspend %d", pid)
		assert.False(t, Resume(pid), "resume %d", pid)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	assert.False(t, Apply(1, model.Action("kill")))
}
