package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/internal/adapters/watcher"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "index.html")
	ignored := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("<p>one</p>"), domain.FilePerm))
	require.NoError(t, os.WriteFile(ignored, []byte("x"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(20*time.Millisecond, log)
	require.NoError(t, w.Start(t.Context(), []string{watched}))
	t.Cleanup(func() { _ = w.Stop() })

	batches := make(chan []string, 1)
	go func() {
		for batch := range w.Changes() {
			batches <- batch
			return
		}
	}()

	require.NoError(t, os.WriteFile(ignored, []byte("y"), domain.FilePerm))
	require.NoError(t, os.WriteFile(watched, []byte("<p>two</p>"), domain.FilePerm))

	select {
	case batch := <-batches:
		assert.Equal(t, []string{watched}, batch)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change batch")
	}
}

func TestWatcher_StopEndsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.css")
	require.NoError(t, os.WriteFile(path, []byte("p{}"), domain.FilePerm))

	w := watcher.NewWatcher(watcher.DefaultDebounceWindow, nil)
	require.NoError(t, w.Start(t.Context(), []string{path}))

	done := make(chan struct{})
	go func() {
		for range w.Changes() {
		}
		close(done)
	}()

	require.NoError(t, w.Stop())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Changes did not stop")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w := watcher.NewWatcher(watcher.DefaultDebounceWindow, nil)
	err := w.Start(t.Context(), []string{filepath.Join(t.TempDir(), "missing", "x.css")})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	require.NoError(t, w.Stop())
}
