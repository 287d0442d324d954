package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmacinski/veil/internal/frame"
	"github.com/kmacinski/veil/internal/panel"
	"github.com/kmacinski/veil/internal/ui"
	"github.com/kmacinski/veil/internal/window"
)

func TestLoadMissingFile(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "state.yaml"))
	require.NoError(t, err)
	require.Empty(t, snap)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	require.NoError(t, Save(path, Snapshot{"help": true, "notes": false}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "help: true")

	snap, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Snapshot{"help": true, "notes": false}, snap)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file cleaned up")
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("windows: [unclosed"), 0o644))
	_, err := Load(path)
	require.ErrorContains(t, err, "parse state")
}

func TestCaptureAndRestore(t *testing.T) {
	mgr := window.NewManager(window.Options{Scheduler: frame.NewLoop(&frame.ManualClock{})})
	newWindow := func(name string) *window.Window {
		p := panel.New(name, name, nil, ui.DefaultStyles)
		return mgr.NewWindow(window.Named(name), p, window.Config{TakeFocus: true})
	}

	a, b := newWindow("a"), newWindow("b")
	require.NoError(t, a.Activate())
	require.NoError(t, b.Activate())
	a.SetOpen(true, true)
	a.Deactivate()
	b.Deactivate()

	snap := Capture([]string{"a", "b"}, []*window.Window{a, b})
	require.Equal(t, Snapshot{"a": true, "b": false}, snap)

	a2, b2 := newWindow("a"), newWindow("b")
	snap.Restore([]string{"a", "b"}, []*window.Window{a2, b2})
	require.NoError(t, a2.Activate())
	require.NoError(t, b2.Activate())
	require.True(t, a2.IsOpen())
	require.False(t, b2.IsOpen())
}
