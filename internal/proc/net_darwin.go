//go:build darwin

package proc

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type platformTable struct{}

func (platformTable) listListening() ([]model.Endpoint, error) {
	out, err := exec.Command("lsof", "-iTCP", "-sTCP:LISTEN", "-n", "-P").Output()
	if err != nil {
		// lsof exits 1 when nothing matches
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("lsof: %w", err)
	}
	return ParseLsof(string(out)), nil
}
