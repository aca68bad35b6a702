package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

// newLogger builds the diagnostic logger. It writes to the log file when one
// is configured, and also to stderr when debug is set and the terminal is not
// owned by the TUI.
func newLogger(path string, debug, interactive bool) (*log.Logger, func() error, error) {
	var writers []io.Writer
	closer := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}
	if debug && !interactive {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		return log.New(io.Discard, "", 0), closer, nil
	}
	return log.New(io.MultiWriter(writers...), "portpause ", log.LstdFlags|log.Lmicroseconds), closer, nil
}
