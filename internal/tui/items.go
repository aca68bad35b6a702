package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type portItem struct {
	endpoint model.Endpoint
	status   model.Status
}

func (i portItem) FilterValue() string { return strconv.Itoa(i.endpoint.Port) }

// row is the plain text of a list entry, e.g.
// "Port: 8080     | PID: 1234   | [PAUSED] nginx".
func (i portItem) row() string {
	s := fmt.Sprintf("Port: %-8d | PID: %-6d | %s", i.endpoint.Port, i.endpoint.PID, i.status.Label())
	if i.endpoint.Command != "" {
		s += " " + i.endpoint.Command
	}
	return s
}

type portDelegate struct {
	styles styles
}

func (d portDelegate) Height() int                             { return 1 }
func (d portDelegate) Spacing() int                            { return 0 }
func (d portDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d portDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(portItem)
	if !ok {
		return
	}

	text := it.row()
	if width := m.Width() - 1; width > 0 {
		text = truncate.StringWithTail(text, uint(width), "…")
	}

	style := d.styles.item
	if index == m.Index() {
		style = d.styles.selected.Width(m.Width())
	}
	if it.status == model.StatusPaused {
		style = style.Foreground(d.styles.paused.GetForeground())
	}
	fmt.Fprint(w, style.Render(text))
}
