// Package state persists which windows were open between runs.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kmacinski/veil/internal/window"
)

// Snapshot maps a window identity to whether it was open
type Snapshot map[string]bool

type file struct {
	Windows Snapshot `yaml:"windows"`
}

// Load reads a snapshot. A missing file yields an empty snapshot.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", path, err)
	}
	if f.Windows == nil {
		f.Windows = Snapshot{}
	}
	return f.Windows, nil
}

// Save writes a snapshot, replacing the file atomically
func Save(path string, snap Snapshot) error {
	data, err := yaml.Marshal(file{Windows: snap})
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Capture records the was-open flag of each window under keys[i], the key
// the window was configured with. Windows sharing a key are recorded as
// open if any of them was.
func Capture(keys []string, windows []*window.Window) Snapshot {
	snap := make(Snapshot, len(windows))
	for i, w := range windows {
		snap[keys[i]] = snap[keys[i]] || w.WasOpen()
	}
	return snap
}

// Restore seeds each inactive window with the flag recorded under keys[i]
func (s Snapshot) Restore(keys []string, windows []*window.Window) {
	for i, w := range windows {
		if open, ok := s[keys[i]]; ok {
			w.SetWasOpen(open)
		}
	}
}
