package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// layout returns the inner heights of the port box and the log box.
// The log box takes about a quarter of the screen.
func (m MainModel) layout() (int, int) {
	logBox := m.height / 4
	if logBox < 5 {
		logBox = 5
	}
	listBox := m.height - 1 - logBox
	if listBox < 5 {
		listBox = 5
	}
	return listBox - 2, logBox - 2
}

func (m MainModel) logBoxTop() int {
	listInner, _ := m.layout()
	return listBoxTop + listInner + 2
}

func (m *MainModel) resize() {
	listInner, logInner := m.layout()
	innerWidth := m.width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	m.list.SetSize(innerWidth, listInner)

	m.logView.Width = innerWidth
	m.logView.Height = logInner - 1 // title row
	if m.logView.Height < 1 {
		m.logView.Height = 1
	}
	m.updateLogViewport()
}

func (m MainModel) View() string {
	if m.state == stateExited {
		return ""
	}

	listInner, logInner := m.layout()
	boxWidth := m.width - 2
	if boxWidth < 12 {
		boxWidth = 12
	}

	helpText := lipgloss.NewStyle().Bold(true).Render(m.keys.helpLine())
	header := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpText)
	if m.version != "" {
		left := (m.width - lipgloss.Width(helpText)) / 2
		gap := m.width - left - lipgloss.Width(helpText) - lipgloss.Width(m.version)
		if left >= 0 && gap > 0 {
			header = strings.Repeat(" ", left) + helpText + strings.Repeat(" ", gap) + m.styles.help.Render(m.version)
		}
	}

	var body string
	if m.state == stateLoading {
		body = m.styles.dim.Render("Loading listening ports...")
	} else {
		body = m.list.View()
	}
	listBox := m.styles.box.
		Width(boxWidth).
		Height(listInner).
		Render(body)

	logTitle := m.styles.title.Render("Status Log")
	if n := len(m.tracker.Paused()); n > 0 {
		logTitle += " " + m.styles.paused.Render(fmt.Sprintf("%d paused", n))
	}
	if m.state == stateActing {
		logTitle += " " + m.styles.dim.Render("working...")
	}
	logBox := m.styles.box.
		Width(boxWidth).
		Height(logInner).
		Render(lipgloss.JoinVertical(lipgloss.Left, logTitle, m.logView.View()))

	return lipgloss.JoinVertical(lipgloss.Left, header, listBox, logBox)
}
