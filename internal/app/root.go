package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/portpause/internal/output"
	"github.com/pranshuparmar/portpause/internal/proc"
	"github.com/pranshuparmar/portpause/internal/tui"
	"github.com/pranshuparmar/portpause/pkg/model"
)

var (
	cfgFile string
	logFile string
	debug   bool

	cfg Config

	logger   = log.New(io.Discard, "", 0)
	closeLog = func() error { return nil }

	// replaced in tests
	newSystem = func() System { return proc.System{} }
	startTUI  = tui.Start
)

// Execute is the entry point for the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd wires the cobra tree. Without a sub-command it opens the TUI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portpause",
		Short: "Suspend and resume the processes behind listening ports",
		Long: "portpause lists the local listening TCP ports with the process that owns each one,\n" +
			"and lets you suspend (p) or resume (r) that process from an interactive list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := newSystem()
			logger.Printf("starting tui")
			return startTUI(tui.Options{
				Version:   version,
				Colors:    cfg.tuiColors(),
				Mouse:     cfg.Mouse,
				AltScreen: cfg.AltScreen,
				Logger:    logger,
			}, sys, sys)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config.yaml (default: user config dir)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Append diagnostics to this file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Print diagnostics to stderr (non-interactive commands)")

	root.AddCommand(
		newActionCmd(model.ActionPause),
		newActionCmd(model.ActionResume),
		newControlCmd(),
		newListCmd(),
		newVersionCmd(),
	)
	return root
}

func setup(cmd *cobra.Command) error {
	path, explicit := cfgFile, cmd.Flags().Changed("config")
	if path == "" {
		path = DefaultConfigPath()
	}
	c, err := loadConfigFile(path, explicit)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		c.LogFile = logFile
	}
	if cmd.Flags().Changed("debug") {
		c.Debug = debug
	}

	interactive := cmd == cmd.Root()
	l, closer, err := newLogger(c.LogFile, c.Debug, interactive)
	if err != nil {
		return err
	}
	cfg, logger, closeLog = c, l, closer
	proc.SetLogger(l)
	return nil
}

func newActionCmd(action model.Action) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <port>", action),
		Short: fmt.Sprintf("%s the process listening on a port", capitalize(string(action))),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}
			runControl(cmd, port, action)
			return nil
		},
	}
}

// newControlCmd is the (port, action) form of pause/resume.
func newControlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "control <port> <pause|resume>",
		Short: "Apply an action to the process listening on a port",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}
			action, err := model.ParseAction(args[1])
			if err != nil {
				return err
			}
			runControl(cmd, port, action)
			return nil
		},
	}
}

func runControl(cmd *cobra.Command, port int, action model.Action) {
	ok := ControlByPort(cmd.OutOrStdout(), newSystem(), port, action)
	logger.Printf("%s port %d: success=%t", action, port, ok)
}

func newListCmd() *cobra.Command {
	var asJSON, noColor bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the listening ports and their processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eps := newSystem().ListListening()
			if asJSON {
				out, err := output.ToJSON(eps)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			colorEnabled := !noColor && os.Getenv("NO_COLOR") == ""
			output.RenderList(cmd.OutOrStdout(), eps, colorEnabled)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q (want 1-65535)", s)
	}
	return port, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
