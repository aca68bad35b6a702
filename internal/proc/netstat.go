package proc

import (
	"strconv"
	"strings"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// ParseNetstat reads `netstat -ano` output and returns the listening TCP rows
// in table order. Expected row shape:
//
//	TCP    0.0.0.0:8080    0.0.0.0:0    LISTENING    1234
//
// The second column is the local address and the last column the owning PID.
// Rows that do not fit are skipped.
func ParseNetstat(output string) []model.Endpoint {
	var rows []model.Endpoint
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		proto := strings.ToUpper(fields[0])
		if proto != "TCP" && proto != "TCPV6" {
			continue
		}
		if !strings.EqualFold(fields[3], "LISTENING") && !strings.EqualFold(fields[3], "LISTEN") {
			continue
		}

		pid, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil || pid < 0 {
			continue
		}
		addr, port := parseHostPort(fields[1])
		if port == 0 {
			continue
		}

		protocol := "TCP"
		if strings.Contains(addr, ":") {
			protocol = "TCP6"
		}
		rows = append(rows, model.Endpoint{
			Port:     port,
			PID:      pid,
			Address:  addr,
			Protocol: protocol,
		})
	}
	return rows
}
