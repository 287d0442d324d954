// Package config provides TOML-based configuration for veil.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kmacinski/veil/internal/window"
)

// Config holds all application configuration
type Config struct {
	Identity      string   `toml:"identity"` // "name" or "kind"
	Clock         string   `toml:"clock"`    // "unscaled" or "scaled"
	FrameInterval Duration `toml:"frame_interval"`
	StateFile     string   `toml:"state_file"`
	LogFile       string   `toml:"log_file"`

	Cursor   CursorConfig   `toml:"cursor"`
	Defaults DefaultsConfig `toml:"defaults"`
	Windows  []WindowConfig `toml:"windows"`
}

// CursorConfig holds cursor settings
type CursorConfig struct {
	Unlocked string `toml:"unlocked"` // "none" or "confined"
}

// DefaultsConfig holds values used by windows that leave them unset
type DefaultsConfig struct {
	ShowDuration Duration `toml:"show_duration"`
	HideDuration Duration `toml:"hide_duration"`
}

// WindowConfig describes one window
type WindowConfig struct {
	Name          string    `toml:"name"`
	Kind          string    `toml:"kind"`
	Title         string    `toml:"title"`
	Content       string    `toml:"content"` // "help", "text" or "roster"
	Body          string    `toml:"body"`
	Start         string    `toml:"start"` // "none", "show" or "hide"
	ShowDuration  *Duration `toml:"show_duration"`
	HideDuration  *Duration `toml:"hide_duration"`
	TakeFocus     *bool     `toml:"take_focus"`
	AllowMultiple bool      `toml:"allow_multiple"`
}

// Default is the configuration used when no file exists
var Default = Config{
	Identity:      "name",
	Clock:         "unscaled",
	FrameInterval: Duration{16 * time.Millisecond},
	Cursor: CursorConfig{
		Unlocked: "none",
	},
	Defaults: DefaultsConfig{
		ShowDuration: Duration{250 * time.Millisecond},
		HideDuration: Duration{250 * time.Millisecond},
	},
	Windows: []WindowConfig{
		{Name: "windows", Kind: "roster", Title: "Windows", Content: "roster", Start: "show", TakeFocus: boolPtr(false)},
		{Name: "help", Kind: "help", Title: "Keybindings", Content: "help"},
		{Name: "notes", Kind: "notes", Title: "Notes", Content: "text", Body: "Press space to open or close a window.\nPress i to isolate it."},
	},
}

// DefaultConfig returns a copy of Default with paths resolved
func DefaultConfig() *Config {
	cfg := Default
	cfg.Windows = append([]WindowConfig(nil), Default.Windows...)

	home, _ := os.UserHomeDir()
	cfg.StateFile = filepath.Join(xdgStateHome(home), "veil", "state.yaml")
	cfg.LogFile = filepath.Join(xdgStateHome(home), "veil", "veil.log")
	return &cfg
}

// Scheme returns the identity scheme
func (c *Config) Scheme() window.Scheme {
	if c.Identity == "kind" {
		return window.SchemeKind
	}
	return window.SchemeName
}

// UnlockedMode returns the cursor lock mode used while a window has focus
func (c *Config) UnlockedMode() window.LockMode {
	if c.Cursor.Unlocked == "confined" {
		return window.LockConfined
	}
	return window.LockNone
}

// Key returns the registry key of w under the configured scheme
func (c *Config) Key(w WindowConfig) string {
	if c.Scheme() == window.SchemeKind {
		return w.Kind
	}
	return window.NormalizeName(w.Name)
}

// Keys returns the registry keys of all configured windows
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Windows))
	for _, w := range c.Windows {
		keys = append(keys, c.Key(w))
	}
	return keys
}

// WindowConfig converts w to core window settings
func (c *Config) WindowConfig(w WindowConfig) window.Config {
	wc := window.Config{
		ShowDuration:  c.Defaults.ShowDuration.Duration,
		HideDuration:  c.Defaults.HideDuration.Duration,
		TakeFocus:     true,
		AllowMultiple: w.AllowMultiple,
		StartMode:     startMode(w.Start),
	}
	if w.ShowDuration != nil {
		wc.ShowDuration = w.ShowDuration.Duration
	}
	if w.HideDuration != nil {
		wc.HideDuration = w.HideDuration.Duration
	}
	if w.TakeFocus != nil {
		wc.TakeFocus = *w.TakeFocus
	}
	return wc
}

func startMode(s string) window.StartMode {
	switch s {
	case "show":
		return window.StartShow
	case "hide":
		return window.StartHide
	default:
		return window.StartNone
	}
}

// Validate checks enum values and identity uniqueness
func (c *Config) Validate() error {
	var errs []error

	if !oneOf(c.Identity, "name", "kind") {
		errs = append(errs, fmt.Errorf("identity: unknown scheme %q (use name or kind)", c.Identity))
	}
	if !oneOf(c.Clock, "unscaled", "scaled") {
		errs = append(errs, fmt.Errorf("clock: unknown clock %q (use unscaled or scaled)", c.Clock))
	}
	if !oneOf(c.Cursor.Unlocked, "", "none", "confined") {
		errs = append(errs, fmt.Errorf("cursor.unlocked: unknown mode %q (use none or confined)", c.Cursor.Unlocked))
	}
	if c.FrameInterval.Duration <= 0 {
		errs = append(errs, errors.New("frame_interval: must be positive"))
	}

	seen := make(map[string]WindowConfig)
	for i, w := range c.Windows {
		key := c.Key(w)
		if key == "" {
			errs = append(errs, fmt.Errorf("windows[%d]: missing %s", i, c.Identity))
			continue
		}
		if !oneOf(w.Content, "", "help", "text", "roster") {
			errs = append(errs, fmt.Errorf("windows[%d] %s: unknown content %q", i, key, w.Content))
		}
		if !oneOf(w.Start, "", "none", "show", "hide") {
			errs = append(errs, fmt.Errorf("windows[%d] %s: unknown start %q", i, key, w.Start))
		}
		if prev, ok := seen[key]; ok && !(prev.AllowMultiple && w.AllowMultiple) {
			errs = append(errs, fmt.Errorf("windows[%d]: %s %q is already used by another window", i, c.Identity, key))
		}
		seen[key] = w
	}

	return errors.Join(errs...)
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool {
	return &b
}
