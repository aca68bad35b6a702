//go:build windows

package proc

import (
	"fmt"
	"os/exec"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type platformTable struct{}

func (platformTable) listListening() ([]model.Endpoint, error) {
	out, err := exec.Command("netstat", "-ano").Output()
	if err != nil {
		return nil, fmt.Errorf("netstat: %w", err)
	}
	return ParseNetstat(string(out)), nil
}
