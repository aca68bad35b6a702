//go:build linux

package proc

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pranshuparmar/portpause/pkg/model"
)

const tcpListen = "0A"

// procRoot is swapped for a fake tree in tests.
var procRoot = "/proc"

type platformTable struct{}

func (platformTable) listListening() ([]model.Endpoint, error) {
	var sockets []socketRow
	var readErr error
	for _, src := range []struct {
		file  string
		proto string
		ipv6  bool
	}{
		{"tcp", "TCP", false},
		{"tcp6", "TCP6", true},
	} {
		rows, err := readListening(filepath.Join(procRoot, "net", src.file), src.proto, src.ipv6)
		if err != nil {
			readErr = err
			continue
		}
		sockets = append(sockets, rows...)
	}
	if len(sockets) == 0 {
		return nil, readErr
	}

	owners, err := socketOwners()
	if err != nil {
		return nil, err
	}

	endpoints := make([]model.Endpoint, 0, len(sockets))
	comms := make(map[int]string)
	for _, s := range sockets {
		pid, ok := owners[s.inode]
		if !ok {
			continue
		}
		comm, ok := comms[pid]
		if !ok {
			comm = readComm(pid)
			comms[pid] = comm
		}
		endpoints = append(endpoints, model.Endpoint{
			Port:     s.port,
			PID:      pid,
			Address:  s.addr,
			Protocol: s.proto,
			Command:  comm,
		})
	}
	return endpoints, nil
}

type socketRow struct {
	inode string
	port  int
	addr  string
	proto string
}

// readListening returns the LISTEN rows of a /proc/net/tcp style file.
func readListening(path, proto string, ipv6 bool) ([]socketRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rows []socketRow
	scanner := bufio.NewScanner(f)
	scanner.Scan() // skip header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}
		if fields[3] != tcpListen {
			continue
		}
		inode := fields[9]
		if inode == "0" {
			continue
		}
		addr, port := parseAddr(fields[1], ipv6)
		if port == 0 {
			continue
		}
		rows = append(rows, socketRow{inode: inode, port: port, addr: addr, proto: proto})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// socketOwners maps socket inodes to the lowest PID holding a descriptor on
// them. A pre-fork server shares its listener with every worker; the master
// has the lowest PID. Processes whose fd directory is not readable are skipped.
func socketOwners() (map[string]int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", procRoot, err)
	}

	owners := make(map[string]int)
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}

		fdPath := filepath.Join(procRoot, e.Name(), "fd")
		fds, err := os.ReadDir(fdPath)
		if err != nil {
			continue
		}
		for _, fd := range fds {
			link, err := os.Readlink(filepath.Join(fdPath, fd.Name()))
			if err != nil || !strings.HasPrefix(link, "socket:[") {
				continue
			}
			inode := strings.TrimSuffix(strings.TrimPrefix(link, "socket:["), "]")
			if cur, ok := owners[inode]; !ok || pid < cur {
				owners[inode] = pid
			}
		}
	}
	return owners, nil
}

func readComm(pid int) string {
	b, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "comm"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func parseAddr(raw string, ipv6 bool) (string, int) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return "", 0
	}
	port, _ := strconv.ParseInt(parts[1], 16, 32)

	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", int(port)
	}

	if ipv6 {
		if len(b) != 16 {
			return "::", int(port)
		}
		// stored as four little-endian 32-bit words
		ip := make(net.IP, 16)
		for i := 0; i < 4; i++ {
			ip[i*4+0] = b[i*4+3]
			ip[i*4+1] = b[i*4+2]
			ip[i*4+2] = b[i*4+1]
			ip[i*4+3] = b[i*4+0]
		}
		return ip.String(), int(port)
	}

	if len(b) < 4 {
		return "", int(port)
	}
	return net.IPv4(b[3], b[2], b[1], b[0]).String(), int(port)
}
