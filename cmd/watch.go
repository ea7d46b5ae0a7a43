package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/scanner"
	"github.com/brogergvhs/watchgrid/internal/ui"
	"github.com/brogergvhs/watchgrid/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagWatchDir      string
	flagWatchDebounce string
)

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Scan continuously while the history feed is saved into a snapshot directory",
		Long: "Starts a scan session over the newest HTML snapshot in a directory. Every time a snapshot " +
			"is written (for example by a page-saving browser extension while you scroll the feed) a " +
			"debounced collection pass runs. Stop with Ctrl-C.",
		RunE: runWatch,
	}

	watchCmd.Flags().StringVar(&flagWatchDir, "dir", "", "directory the history page snapshots are saved to")
	watchCmd.Flags().StringVar(&flagWatchDebounce, "debounce", "", "quiet period after the last change before a pass (e.g. 500ms)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	opts := config.Options{SnapshotDir: flagWatchDir}
	if flagWatchDebounce != "" {
		d, err := time.ParseDuration(flagWatchDebounce)
		if err != nil {
			return fmt.Errorf("invalid --debounce: %w", err)
		}
		opts.Debounce = d
	}

	cfg, usedPath, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.SnapshotDir == "" {
		return fmt.Errorf("missing --dir and no snapshot_dir in config")
	}
	if err := os.MkdirAll(cfg.SnapshotDir, 0755); err != nil {
		return fmt.Errorf("cannot create snapshot folder: %w", err)
	}

	// stdout belongs to the status line while watching
	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Out = os.Stderr
	fmt.Printf("Config file: %s\n", usedPath)

	repo, kv, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = kv.Close()
	}()

	src, err := newSource(cfg, cfg.SnapshotDir, logSvc)
	if err != nil {
		return err
	}

	events, err := scanner.WatchDir(cfg.SnapshotDir, logSvc)
	if err != nil {
		return err
	}
	defer func() {
		_ = events.Close()
	}()

	status := ui.NewStatusLine(os.Stdout, &ui.Stats{})
	defer status.Close()

	failed := make(chan scanner.Status, 1)
	var failOnce sync.Once

	merger := history.NewMerger(repo)
	sc := scanner.New(src, merger, scanner.Options{
		Debounce:    cfg.Debounce,
		PassTimeout: cfg.PassTimeout,
		Scroll:      events,
		Log:         logSvc,
		Notifier: scanner.NotifierFunc(func(st scanner.Status) {
			status.Notify(st)
			if st.Err != nil && !st.IsScanning {
				failOnce.Do(func() { failed <- st })
			}
		}),
	})

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := util.SetupInterruptHandler(parent, func() { sc.Stop() })
	defer cancel()

	fmt.Printf("Watching %s (debounce %s)\n", cfg.SnapshotDir, cfg.Debounce)
	sc.Start(ctx)

	var runErr error
	select {
	case <-ctx.Done():
	case st := <-failed:
		runErr = st.Err
	}

	sc.Stop()
	status.Close()

	if _, err := merger.Merge(context.Background(), nil, false); err != nil {
		logSvc.Warnf("Could not record scan end: %v\n", err)
	}

	return runErr
}
