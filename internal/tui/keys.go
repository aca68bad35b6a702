package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause  key.Binding
	Resume key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("P", "Pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("R", "Resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("Q", "Quit"),
		),
	}
}

// helpLine renders "P: Pause | R: Resume | Q: Quit".
func (k keyMap) helpLine() string {
	var s string
	for i, b := range []key.Binding{k.Pause, k.Resume, k.Quit} {
		if i > 0 {
			s += " | "
		}
		s += b.Help().Key + ": " + b.Help().Desc
	}
	return s
}
