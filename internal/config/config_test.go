package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/providers/crunchyroll"
	"github.com/brogergvhs/watchgrid/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) (cfgHome, dataDir string) {
	t.Helper()
	cfgHome = t.TempDir()
	dataDir = t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("WATCHGRID_DATA_DIR", dataDir)
	return cfgHome, dataDir
}

func TestLoadMergedWithoutConfig(t *testing.T) {
	_, dataDir := isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)

	assert.Contains(t, used, "default config in memory")
	assert.Equal(t, crunchyroll.HistoryURL, cfg.HistoryURL)
	assert.Equal(t, storage.BackendSQLite, cfg.Storage)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), cfg.StoragePath)
	assert.Equal(t, history.DefaultKey, cfg.StorageKey)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
	assert.Equal(t, crunchyroll.DefaultSelectors(), cfg.Selectors)
}

func TestLoadMergedFlagsOverrideFile(t *testing.T) {
	_, dataDir := isolate(t)

	path, err := InitDefaultProfile()
	require.NoError(t, err)

	onDisk := DefaultConfig()
	onDisk.Storage = storage.BackendFile
	onDisk.Debounce = time.Second
	onDisk.UserAgent = "from-file"
	onDisk.Selectors = crunchyroll.Selectors{Card: ".card"}
	require.NoError(t, SaveYAML(onDisk, path))

	cfg, used, err := LoadMerged(Options{UserAgent: "from-flag", Debug: true})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, storage.BackendFile, cfg.Storage)
	assert.Equal(t, filepath.Join(dataDir, "history"), cfg.StoragePath)
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.Equal(t, "from-flag", cfg.UserAgent)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ".card", cfg.Selectors.Card)
	assert.Equal(t, crunchyroll.DefaultSelectors().EpisodeLink, cfg.Selectors.EpisodeLink)
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolate(t)

	path, err := InitDefaultProfile()
	require.NoError(t, err)
	onDisk := DefaultConfig()
	onDisk.StorageKey = "fromFile"
	require.NoError(t, SaveYAML(onDisk, path))

	cfg, used, err := LoadMerged(Options{IgnoreConfig: true, Storage: storage.BackendMemory})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, history.DefaultKey, cfg.StorageKey)
	assert.Equal(t, storage.BackendMemory, cfg.Storage)
	assert.Equal(t, "", cfg.StoragePath)
}

func TestLoadMergedBrokenYAML(t *testing.T) {
	isolate(t)

	path, err := InitDefaultProfile()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("debounce: [nope"), 0644))

	_, _, err = LoadMerged(Options{})
	assert.Error(t, err)
}

func TestProfiles(t *testing.T) {
	cfgHome, dataDir := isolate(t)

	_, err := CurrentLabel()
	assert.ErrorIs(t, err, ErrNoConfig)

	list, err := ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, list)

	path, err := InitDefaultProfile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfgHome, "watchgrid", "configs", "Default.yaml"), path)

	_, err = InitDefaultProfile()
	assert.ErrorIs(t, err, os.ErrExist)

	require.NoError(t, SaveYAML(DefaultConfig(), ProfilePath("Work")))
	require.NoError(t, os.WriteFile(ProfilePath("Broken"), []byte("storage: [x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(ConfigsDir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "history.db"), []byte{}, 0644))

	list, err = ListProfiles()
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Broken", list[0].Label)
	assert.Error(t, list[0].Err)

	assert.Equal(t, "Default", list[1].Label)
	assert.True(t, list[1].Active)
	assert.Equal(t, storage.BackendSQLite, list[1].Storage)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), list[1].HistoryPath)
	assert.True(t, list[1].HasHistory)

	assert.Equal(t, "Work", list[2].Label)
	assert.False(t, list[2].Active)
	assert.Equal(t, filepath.Join(dataDir, "profiles", "Work", "history.db"), list[2].HistoryPath)
	assert.False(t, list[2].HasHistory)

	require.NoError(t, SwitchProfile(" Work "))
	label, active, err := ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, "Work", label)
	assert.Equal(t, ProfilePath("Work"), active)

	assert.Error(t, SwitchProfile("Missing"))
	assert.Error(t, SwitchProfile("  "))
}

func TestProfileKeepsOwnHistory(t *testing.T) {
	_, dataDir := isolate(t)

	_, err := InitDefaultProfile()
	require.NoError(t, err)

	work := DefaultConfig()
	work.Storage = storage.BackendFile
	require.NoError(t, SaveYAML(work, ProfilePath("Work")))
	require.NoError(t, SwitchProfile("Work"))

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Equal(t, ProfilePath("Work"), used)
	assert.Equal(t, filepath.Join(dataDir, "profiles", "Work", "history"), cfg.StoragePath)

	cfg, _, err = LoadMerged(Options{StoragePath: "/tmp/elsewhere.db"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.StoragePath)

	cfg, _, err = LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), cfg.StoragePath)

	assert.Equal(t, dataDir, ProfileDataDir(DefaultProfile))
	assert.Equal(t, dataDir, ProfileDataDir(""))
}

func TestDataRoot(t *testing.T) {
	t.Setenv("WATCHGRID_DATA_DIR", "")
	t.Setenv("LOCALAPPDATA", "")
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	assert.Equal(t, filepath.Join(xdg, "watchgrid"), DataRoot())

	t.Setenv("WATCHGRID_DATA_DIR", "/srv/watchgrid")
	assert.Equal(t, "/srv/watchgrid", DataRoot())
}
