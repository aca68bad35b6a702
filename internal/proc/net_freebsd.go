//go:build freebsd

package proc

import (
	"fmt"
	"os/exec"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type platformTable struct{}

func (platformTable) listListening() ([]model.Endpoint, error) {
	out, err := exec.Command("sockstat", "-4", "-6", "-l", "-P", "tcp").Output()
	if err != nil {
		return nil, fmt.Errorf("sockstat: %w", err)
	}
	return ParseSockstat(string(out)), nil
}
