package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen rows: 0 help line, 1 top border of the port box, 2 list title,
// 3 title padding, 4 first list row.
const (
	listBoxTop   = 1
	listItemsTop = 4
)

func (m MainModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state == stateExited {
		return m, nil
	}

	if msg.Y >= m.logBoxTop() {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.CursorUp()
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.CursorDown()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if idx, ok := m.rowAt(msg.Y); ok {
			m.list.Select(idx)
		}
	}
	return m, nil
}

// rowAt maps a screen row to an item index on the current page.
func (m MainModel) rowAt(y int) (int, bool) {
	offset := y - listItemsTop
	if offset < 0 {
		return 0, false
	}
	p := m.list.Paginator
	if offset >= p.ItemsOnPage(len(m.list.Items())) {
		return 0, false
	}
	return p.Page*p.PerPage + offset, true
}
