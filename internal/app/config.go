package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pranshuparmar/portpause/internal/tui"
)

// Config is the optional config.yaml. Flags override it.
type Config struct {
	LogFile   string      `yaml:"log_file"`
	Debug     bool        `yaml:"debug"`
	Mouse     bool        `yaml:"mouse"`
	AltScreen bool        `yaml:"alt_screen"`
	Colors    ColorConfig `yaml:"colors"`
}

type ColorConfig struct {
	Paused  string `yaml:"paused"`
	Running string `yaml:"running"`
	Error   string `yaml:"error"`
}

func DefaultConfig() Config {
	c := tui.DefaultColors()
	return Config{
		Mouse:     true,
		AltScreen: true,
		Colors: ColorConfig{
			Paused:  c.Paused,
			Running: c.Running,
			Error:   c.Error,
		},
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/portpause/config.yaml or the
// platform equivalent. Empty when no config directory is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "portpause", "config.yaml")
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults together with an error wrapping os.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func loadConfigFile(path string, explicit bool) (Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil && !(errors.Is(err, os.ErrNotExist) && !explicit) {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) tuiColors() tui.Colors {
	return tui.Colors{
		Paused:  c.Colors.Paused,
		Running: c.Colors.Running,
		Error:   c.Colors.Error,
	}
}
