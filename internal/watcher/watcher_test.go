package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	w, err := New(path, 50*time.Millisecond, func() { calls.Add(1) })
	require.NoError(t, err)
	w.Start()
	t.Cleanup(w.Stop)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	require.EqualValues(t, 1, calls.Load())
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var calls atomic.Int32
	w, err := New(path, 20*time.Millisecond, func() { calls.Add(1) })
	require.NoError(t, err)
	w.Start()
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestStopTwice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "c.toml"), time.Millisecond, func() {})
	require.NoError(t, err)
	w.Stop()
	w.Stop()
}
