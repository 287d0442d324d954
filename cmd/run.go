package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kmacinski/veil/internal/app"
)

var (
	openNames   []string
	isolateName string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive window host (default)",
	Long: `Start the interactive window host. When stdout is not a terminal a
single preview frame is printed instead.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&openNames, "open", nil, "Open windows instantly on start")
	c.Flags().StringVar(&isolateName, "isolate", "", "Isolate a window instantly on start")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkNames(cfg, append(append([]string(nil), openNames...), isolateName)...); err != nil {
		return err
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		out, err := app.Preview(cfg, 100, 30)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		Open:       openNames,
		Isolate:    isolateName,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(a, tea.WithAltScreen())
	a.SetProgram(p)
	defer a.Cleanup()

	logger.Info("starting", "config", path, "windows", len(cfg.Windows), "version", version)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
