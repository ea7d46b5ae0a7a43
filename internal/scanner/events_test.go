package scanner

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerListen(t *testing.T) {
	var trig Trigger
	var n atomic.Int32

	cancelA := trig.Listen(func() { n.Add(1) })
	cancelB := trig.Listen(func() { n.Add(10) })
	trig.Fire()
	assert.Equal(t, int32(11), n.Load())

	cancelA()
	cancelA()
	trig.Fire()
	assert.Equal(t, int32(21), n.Load())

	cancelB()
	assert.Equal(t, 0, trig.Listeners())
}

func TestWatchDirFiresOnSnapshots(t *testing.T) {
	dir := t.TempDir()
	events, err := WatchDir(dir, nil)
	require.NoError(t, err)
	defer events.Close()

	var n atomic.Int32
	events.Listen(func() { n.Add(1) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), n.Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.html"), []byte("<html></html>"), 0644))
	assert.Eventually(t, func() bool { return n.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchDirMissing(t *testing.T) {
	_, err := WatchDir(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestIsSnapshot(t *testing.T) {
	assert.True(t, IsSnapshot("/tmp/history.html"))
	assert.True(t, IsSnapshot("page.HTM"))
	assert.False(t, IsSnapshot("page.html.part"))
	assert.False(t, IsSnapshot("cookies.txt"))
}
