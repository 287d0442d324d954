package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/veil/config.toml
//  2. ~/.config/veil/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, string, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFromFile(p)
			return cfg, p, err
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, "", nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. A file that lists
// windows replaces the default window set.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Windows = nil
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("windows") {
		cfg.Windows = append([]WindowConfig(nil), Default.Windows...)
	}
	cfg.StateFile = expandHome(cfg.StateFile)
	cfg.LogFile = expandHome(cfg.LogFile)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VEIL_CLOCK"); v != "" {
		cfg.Clock = v
	}
	if v := os.Getenv("VEIL_IDENTITY"); v != "" {
		cfg.Identity = v
	}
	if v := os.Getenv("VEIL_STATE_FILE"); v != "" {
		cfg.StateFile = expandHome(v)
	}
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "veil", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "veil", "config.toml"))
	}

	return paths
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
