package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	write := func(name string, age time.Duration) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		require.NoError(t, os.Chtimes(p, now.Add(-age), now.Add(-age)))
	}

	write("old.html", time.Hour)
	write("new.HTML", time.Minute)
	write("newest.txt", 0)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), 0755))

	got, err := LatestFile(dir, ".html", ".htm")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "new.HTML"), got)

	got, err = LatestFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newest.txt"), got)
}

func TestLatestFileEmpty(t *testing.T) {
	_, err := LatestFile(t.TempDir(), ".html")
	assert.ErrorIs(t, err, ErrNoMatchingFile)

	_, err = LatestFile(filepath.Join(t.TempDir(), "missing"), ".html")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatchingFile)
}
