package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/portpause/internal/status"
	"github.com/pranshuparmar/portpause/pkg/model"
)

// Enumerator lists the listening endpoints, one per port.
type Enumerator interface {
	ListListening() []model.Endpoint
}

// Controller suspends and resumes processes.
type Controller interface {
	Apply(pid int, action model.Action) bool
}

// Colors are lipgloss colour strings ("#ffdf87", "11", ...).
type Colors struct {
	Paused  string
	Running string
	Error   string
}

func DefaultColors() Colors {
	return Colors{
		Paused:  "#ffdf87", // Amber
		Running: "#22aa22", // Green
		Error:   "#ff5f5f", // Soft red
	}
}

type Options struct {
	Version   string
	Colors    Colors
	Mouse     bool
	AltScreen bool
	Logger    *log.Logger
}

type modelState int

const (
	stateLoading modelState = iota
	stateIdle
	stateActing
	stateExited
)

type MainModel struct {
	state     modelState
	list      list.Model
	logView   viewport.Model
	logLines  []logLine
	endpoints []model.Endpoint

	tracker *status.Tracker
	enum    Enumerator
	ctrl    Controller
	logger  *log.Logger

	styles  styles
	keys    keyMap
	version string
	width   int
	height  int
}

func InitialModel(opts Options, enum Enumerator, ctrl Controller, tracker *status.Tracker) MainModel {
	if tracker == nil {
		tracker = status.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	colors := opts.Colors
	def := DefaultColors()
	if colors.Paused == "" {
		colors.Paused = def.Paused
	}
	if colors.Running == "" {
		colors.Running = def.Running
	}
	if colors.Error == "" {
		colors.Error = def.Error
	}
	st := newStyles(colors)

	l := list.New(nil, portDelegate{styles: st}, 0, 0)
	l.Title = "Listening Ports"
	l.Styles.Title = st.title
	l.Styles.TitleBar = lipgloss.NewStyle().PaddingBottom(1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("listening port", "listening ports")
	l.DisableQuitKeybindings()

	vp := viewport.New(0, 0)
	vp.YPosition = 0

	m := MainModel{
		state:   stateLoading,
		list:    l,
		logView: vp,
		tracker: tracker,
		enum:    enum,
		ctrl:    ctrl,
		logger:  logger,
		styles:  st,
		keys:    defaultKeyMap(),
		version: opts.Version,
	}
	m.appendLog(logLine{text: "TUI Started. Use Arrow Keys to select, P to pause, R to resume."})
	return m
}

func Start(opts Options, enum Enumerator, ctrl Controller) error {
	if os.Getenv("COLORTERM") == "" {
		os.Setenv("COLORTERM", "truecolor") //nolint:errcheck
	}

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(InitialModel(opts, enum, ctrl, status.New()), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m MainModel) Init() tea.Cmd {
	return m.refresh()
}
