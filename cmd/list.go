package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kmacinski/veil/internal/state"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured windows",
	Long:  "List configured windows with their settings and whether they were open when veil last exited.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listEntry is the YAML output for one window
type listEntry struct {
	Key           string `yaml:"key"`
	Title         string `yaml:"title,omitempty"`
	Content       string `yaml:"content"`
	Start         string `yaml:"start"`
	ShowDuration  string `yaml:"show_duration"`
	HideDuration  string `yaml:"hide_duration"`
	TakeFocus     bool   `yaml:"take_focus"`
	AllowMultiple bool   `yaml:"allow_multiple"`
	WasOpen       bool   `yaml:"was_open"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := state.Load(cfg.StateFile)
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(cfg.Windows))
	for _, w := range cfg.Windows {
		settings := cfg.WindowConfig(w)
		key := cfg.Key(w)
		e := listEntry{
			Key:           key,
			Title:         w.Title,
			Content:       orDefault(w.Content, "text"),
			Start:         orDefault(w.Start, "none"),
			ShowDuration:  settings.ShowDuration.String(),
			HideDuration:  settings.HideDuration.String(),
			TakeFocus:     settings.TakeFocus,
			AllowMultiple: settings.AllowMultiple,
			WasOpen:       snap[key],
		}
		entries = append(entries, e)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(entries)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
