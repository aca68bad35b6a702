package output

import (
	"fmt"
	"io"

	"github.com/pranshuparmar/portpause/pkg/model"
)

var (
	colorResetList   = "\033[0m"
	colorMagentaList = "\033[35m"
	colorGreenList   = "\033[32m"
	colorDimList     = "\033[2m"
)

// RenderList prints one line per endpoint:
//
//	8080   TCP   0.0.0.0   nginx (pid 1234)
func RenderList(w io.Writer, eps []model.Endpoint, colorEnabled bool) {
	if len(eps) == 0 {
		fmt.Fprintln(w, "No listening ports found.")
		return
	}

	colorReset, colorMagenta, colorGreen, colorDim := "", "", "", ""
	if colorEnabled {
		colorReset = colorResetList
		colorMagenta = colorMagentaList
		colorGreen = colorGreenList
		colorDim = colorDimList
	}

	fmt.Fprintf(w, "%s%-7s %-5s %-16s %s%s\n", colorDim, "PORT", "PROTO", "ADDRESS", "PROCESS", colorReset)
	for _, ep := range eps {
		name := ep.Command
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(w, "%s%-7d%s %-5s %-16s %s%s%s (%spid %d%s)\n",
			colorMagenta, ep.Port, colorReset,
			ep.Protocol, ep.Address,
			colorGreen, name, colorReset,
			colorDim, ep.PID, colorReset)
	}
}
