package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("site/index.html")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"site/index.html"}, receivedPaths)
	})
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("b.css")
		time.Sleep(50 * time.Millisecond)
		d.Add("a.html")
		d.Add("b.css")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"a.html", "b.css"}, receivedPaths)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(time.Second, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("main.css")
		d.Flush()

		mu.Lock()
		assert.Equal(t, [][]string{{"main.css"}}, batches)
		mu.Unlock()

		// Nothing left once the window would have expired.
		time.Sleep(2 * time.Second)
		synctest.Wait()

		mu.Lock()
		assert.Len(t, batches, 1)
		mu.Unlock()
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("x.html")
		assert.NotPanics(t, d.Flush)
	})
}
