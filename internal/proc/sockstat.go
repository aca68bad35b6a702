package proc

import (
	"strconv"
	"strings"

	"github.com/pranshuparmar/portpause/pkg/model"
)

// ParseSockstat reads `sockstat -l` output:
//
//	USER     COMMAND    PID   FD PROTO  LOCAL ADDRESS         FOREIGN ADDRESS
//	www      nginx      812   6  tcp4   *:80                  *:*
func ParseSockstat(output string) []model.Endpoint {
	var rows []model.Endpoint
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 7 || fields[0] == "USER" {
			continue
		}

		proto := fields[4] // tcp4, tcp6, tcp46, udp4 ...
		if !strings.HasPrefix(proto, "tcp") {
			continue
		}
		// a listening socket has no peer
		switch fields[6] {
		case "*:*", "0.0.0.0:0", "[::]:0":
		default:
			continue
		}

		pid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		addr, port := parseHostPort(fields[5])
		if port == 0 {
			continue
		}

		protocol := "TCP"
		if strings.HasSuffix(proto, "6") {
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
			Command:  fields[1],
		})
	}
	return rows
}
