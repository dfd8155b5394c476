package prefabs

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsPrefabEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("width: 10\n"), 0o644))

	var seen []string
	require.Eventually(t, func() bool {
		seen = append(seen, w.Poll()...)
		return slices.Contains(seen, "player.yaml")
	}, 2*time.Second, 20*time.Millisecond)
	assert.NotContains(t, seen, "notes.txt")
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Poll())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNilWatcherPoll(t *testing.T) {
	var w *Watcher
	assert.Nil(t, w.Poll())
}
