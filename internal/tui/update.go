package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case endpointsMsg:
		cmd := m.setEndpoints(msg)
		if m.state == stateLoading || m.state == stateActing {
			m.state = stateIdle
		}
		return m, cmd

	case actionResultMsg:
		m.applyResult(msg)
		return m, m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state = stateExited
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			return m.startAction(model.ActionPause)
		case key.Matches(msg, m.keys.Resume):
			return m.startAction(model.ActionResume)
		}
		if m.state == stateExited {
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// startAction acts on the highlighted row. Without a row, or while another
// action is still running, it does nothing.
func (m MainModel) startAction(action model.Action) (tea.Model, tea.Cmd) {
	if m.state != stateIdle {
		return m, nil
	}
	ep, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.state = stateActing
	return m, m.runAction(ep, action)
}
