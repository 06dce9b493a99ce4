package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresDirectory(t *testing.T) {
	_, err := New(filepath.Join("/nonexistent", "config.yaml"))
	assert.Error(t, err)
}

func TestReloadSignal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_country: US\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	// give the watcher goroutine a moment to come up
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("default_country: TR\n"), 0o644))

	select {
	case <-w.Reloads():
	case <-time.After(2 * time.Second):
		t.Fatal("no reload signal after config write")
	}
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	w, err := New(path)
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case <-w.Reloads():
		t.Fatal("unexpected reload signal for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	w.Start()
	w.Start() // no-op
	w.Stop()
	w.Stop() // no-op
}
