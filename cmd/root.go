package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kmacinski/veil/internal/config"
	"github.com/kmacinski/veil/internal/window"
)

var version = "dev"

var (
	configPath string
	verbose    bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Fading terminal windows with focus tracking",
	Long: `veil shows configured windows as terminal panels that fade in and out.
Windows are registered by name or kind, can be isolated, renamed and
remember whether they were open between runs.`,
	SilenceUsage: true,
	RunE:         runRun,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/veil/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: from config)")
	addRunFlags(rootCmd)
}

// loadConfig reads --config, or the first config found on the search path
func loadConfig() (*config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("load %s: %w", configPath, err)
		}
		return cfg, configPath, nil
	}
	cfg, path, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, path, nil
}

// newLogger opens the log file. The terminal belongs to the UI, so nothing
// is logged to stderr while it runs.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	path := logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "veil")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// checkNames reports names that match no configured window, suggesting the
// closest match
func checkNames(cfg *config.Config, names ...string) error {
	keys := cfg.Keys()
	for _, name := range names {
		if name == "" {
			continue
		}
		key := name
		if cfg.Scheme() == window.SchemeName {
			key = window.NormalizeName(name)
		}
		found := false
		for _, k := range keys {
			if k == key {
				found = true
				break
			}
		}
		if found {
			continue
		}
		if s := config.Suggest(keys, key); s != "" {
			return fmt.Errorf("unknown window %q (did you mean %q?)", name, s)
		}
		return fmt.Errorf("unknown window %q", name)
	}
	return nil
}
