package cmd

import (
	"fmt"
	"time"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/providers"
	"github.com/brogergvhs/watchgrid/internal/providers/crunchyroll"
	"github.com/brogergvhs/watchgrid/internal/storage"
	"github.com/brogergvhs/watchgrid/internal/ui"
	"github.com/brogergvhs/watchgrid/internal/util"

	"github.com/manifoldco/promptui"
)

func loadConfig(o config.Options) (*config.Config, string, error) {
	o.IgnoreConfig = flagIgnoreConfig
	o.Debug = o.Debug || flagDebug
	o.Storage = flagStorage
	o.StoragePath = flagStoragePath
	o.StorageKey = flagStorageKey

	return config.LoadMerged(o)
}

// openRepository opens the configured backend. The caller closes the KV.
func openRepository(cfg *config.Config) (*history.Repository, storage.KV, error) {
	kv, err := storage.Open(cfg.Storage, cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s storage: %w", cfg.Storage, err)
	}

	return history.NewRepository(kv, cfg.StorageKey), kv, nil
}

// newSource prefers a snapshot file or directory over a live fetch.
func newSource(cfg *config.Config, snapshot string, log *ui.Logger) (providers.Source, error) {
	if snapshot != "" {
		return &crunchyroll.SnapshotSource{
			Path:      snapshot,
			PageURL:   cfg.HistoryURL,
			Selectors: cfg.Selectors,
		}, nil
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		DebugLogger: log,
	})
	if err != nil {
		return nil, err
	}

	return crunchyroll.NewHTTPSource(client, cfg.HistoryURL, cfg.Selectors), nil
}

func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err == nil
}
