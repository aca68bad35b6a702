package proc

import (
	"io"
	"log"

	"github.com/pranshuparmar/portpause/pkg/model"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger routes diagnostics from the enumerator and the controller.
// A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// socketTable is the per-platform source of listening sockets, in table order.
type socketTable interface {
	listListening() ([]model.Endpoint, error)
}

// table is replaced in tests.
var table socketTable = platformTable{}

// ListListening returns one endpoint per listening port. When several sockets
// share a port (IPv4 and IPv6 listeners, SO_REUSEPORT) the first one in table
// order is kept. Any failure yields an empty slice.
func ListListening() []model.Endpoint {
	rows, err := table.listListening()
	if err != nil {
		logger.Printf("[proc] list listening sockets: %v", err)
		return []model.Endpoint{}
	}
	return DedupeByPort(rows)
}

// FindPIDForPort returns the owner of the first listening socket bound to port.
func FindPIDForPort(port int) (int, bool) {
	if port <= 0 || port > 65535 {
		return 0, false
	}
	rows, err := table.listListening()
	if err != nil {
		logger.Printf("[proc] lookup port %d: %v", port, err)
		return 0, false
	}
	for _, r := range rows {
		if r.Port == port && r.PID > 0 {
			return r.PID, true
		}
	}
	return 0, false
}

func DedupeByPort(rows []model.Endpoint) []model.Endpoint {
	out := make([]model.Endpoint, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		if seen[r.Port] {
			continue
		}
		seen[r.Port] = true
		out = append(out, r)
	}
	return out
}
