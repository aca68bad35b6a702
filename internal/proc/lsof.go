package proc

import (
	"strconv"
	"strings"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// ParseLsof reads `lsof -iTCP -sTCP:LISTEN -n -P` output:
//
//	COMMAND PID USER FD   TYPE DEVICE             SIZE/OFF NODE NAME
//	node    123 me   22u  IPv4 0x1234567890abcdef 0t0      TCP  *:3000 (LISTEN)
func ParseLsof(output string) []model.Endpoint {
	var rows []model.Endpoint
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 9 || fields[0] == "COMMAND" {
			continue
		}

		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		if fields[7] != "TCP" {
			continue
		}
		if len(fields) > 9 && strings.Trim(fields[9], "()") != "LISTEN" {
			continue
		}

		addr, port := parseHostPort(fields[8])
		if port == 0 {
			continue
		}

		protocol := "TCP"
		if fields[4] == "IPv6" {
			protocol = "TCP6"
			if addr == "0.0.0.0" {
				addr = "::"
			}
		}
		rows = append(rows, model.Endpoint{
			Port:     port,
			PID:      pid,
			Address:  addr,
			Protocol: protocol,
			Command:  fields[0],
		})
	}
	return rows
}
