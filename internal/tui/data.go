package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/pranshuparmar/portpause/pkg/model"
)

type endpointsMsg []model.Endpoint

type actionResultMsg struct {
	endpoint model.Endpoint
	action   model.Action
	ok       bool
}

type logLine struct {
	tag   string
	style lipgloss.Style
	text  string
}

func (l logLine) String() string {
	if l.tag == "" {
		return l.text
	}
	return l.tag + " " + l.text
}

func (m MainModel) refresh() tea.Cmd {
	enum := m.enum
	return func() tea.Msg {
		return endpointsMsg(enum.ListListening())
	}
}

func (m MainModel) runAction(ep model.Endpoint, action model.Action) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ok := ctrl.Apply(ep.PID, action)
		return actionResultMsg{endpoint: ep, action: action, ok: ok}
	}
}

// setEndpoints rebuilds the list from a fresh enumeration, annotating each
// row with the tracked status and keeping the cursor on the same port.
func (m *MainModel) setEndpoints(eps []model.Endpoint) tea.Cmd {
	prevPort, hadSelection := 0, false
	if it, ok := m.list.SelectedItem().(portItem); ok {
		prevPort, hadSelection = it.endpoint.Port, true
	}
	prevIndex := m.list.Index()

	m.endpoints = eps
	items := make([]list.Item, 0, len(eps))
	newIndex := -1
	for i, ep := range eps {
		items = append(items, portItem{endpoint: ep, status: m.tracker.Get(ep.PID)})
		if hadSelection && ep.Port == prevPort {
			newIndex = i
		}
	}
	cmd := m.list.SetItems(items)

	if len(items) == 0 {
		return cmd
	}
	if newIndex == -1 {
		newIndex = prevIndex
		if newIndex >= len(items) {
			newIndex = len(items) - 1
		}
		if newIndex < 0 {
			newIndex = 0
		}
	}
	m.list.Select(newIndex)
	return cmd
}

func (m *MainModel) selected() (model.Endpoint, bool) {
	it, ok := m.list.SelectedItem().(portItem)
	if !ok {
		return model.Endpoint{}, false
	}
	return it.endpoint, true
}

func (m *MainModel) applyResult(msg actionResultMsg) {
	ep := msg.endpoint
	if !msg.ok {
		m.logger.Printf("[tui] %s PID %d (port %d) failed", msg.action, ep.PID, ep.Port)
		m.appendLog(logLine{
			tag:   "[ERROR]",
			style: m.styles.errorTag,
			text:  fmt.Sprintf("Could not %s PID %d", msg.action, ep.PID),
		})
		return
	}

	m.tracker.Set(ep.PID, msg.action.Result())
	m.logger.Printf("[tui] %s PID %d (port %d) ok", msg.action, ep.PID, ep.Port)
	switch msg.action {
	case model.ActionPause:
		m.appendLog(logLine{
			tag:   "[PAUSE]",
			style: m.styles.pauseTag,
			text:  fmt.Sprintf("Port %d (PID %d) suspended.", ep.Port, ep.PID),
		})
	case model.ActionResume:
		m.appendLog(logLine{
			tag:   "[RESUME]",
			style: m.styles.resumed,
			text:  fmt.Sprintf("Port %d (PID %d) resumed.", ep.Port, ep.PID),
		})
	}
}

func (m *MainModel) appendLog(l logLine) {
	m.logLines = append(m.logLines, l)
	m.updateLogViewport()
}

func (m *MainModel) updateLogViewport() {
	var b strings.Builder
	for i, l := range m.logLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if l.tag != "" {
			b.WriteString(l.style.Render(l.tag) + " ")
		}
		b.WriteString(l.text)
	}

	content := b.String()
	if m.logView.Width > 0 {
		content = wrap.String(content, m.logView.Width)
	}
	m.logView.SetContent(content)
	m.logView.GotoBottom()
}
