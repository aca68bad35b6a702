package proc

import (
	"strconv"
	"strings"
)

// parseHostPort splits the local address column of netstat, lsof and sockstat.
// Accepted forms: "0.0.0.0:8080", "[::]:8080", "*:8080", "*.8080", "127.0.0.1.8080".
func parseHostPort(addr string) (string, int) {
	if strings.HasPrefix(addr, "[") {
		bracketEnd := strings.LastIndex(addr, "]")
		if bracketEnd == -1 {
			return "", 0
		}
		ip := addr[1:bracketEnd]
		rest := addr[bracketEnd+1:]
		if len(rest) > 1 && (rest[0] == ':' || rest[0] == '.') {
			if port, ok := parsePort(rest[1:]); ok {
				if ip == "" {
					ip = "::"
				}
				return ip, port
			}
		}
		return "", 0
	}

	if strings.HasPrefix(addr, "*") {
		if len(addr) > 2 && (addr[1] == ':' || addr[1] == '.') {
			if port, ok := parsePort(addr[2:]); ok {
				return "0.0.0.0", port
			}
		}
		return "", 0
	}

	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		if port, ok := parsePort(addr[idx+1:]); ok {
			return addr[:idx], port
		}
	}

	// BSD netstat separates the port with a dot
	if idx := strings.LastIndex(addr, "."); idx != -1 {
		if port, ok := parsePort(addr[idx+1:]); ok {
			return addr[:idx], port
		}
	}

	return "", 0
}

func parsePort(s string) (int, bool) {
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, false
	}
	return port, true
}
