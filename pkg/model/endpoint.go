package model

// Endpoint is a listening socket and the process that owns it.
// Address, Protocol and Command are filled best effort and may be empty.
type Endpoint struct {
	Port     int    `json:"port"`
	PID      int    `json:"pid"`
	Address  string `json:"address,omitempty"` // 0.0.0.0, 127.0.0.1, ::
	Protocol string `json:"protocol,omitempty"`
	Command  string `json:"command,omitempty"`
}
