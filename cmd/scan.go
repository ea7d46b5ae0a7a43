package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/scanner"
	"github.com/brogergvhs/watchgrid/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagScanURL    string
	flagScanFile   string
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
)

func init() {
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a single collection pass over the history page or a saved snapshot",
		RunE:  runScan,
	}

	scanCmd.Flags().StringVar(&flagScanURL, "url", "", "history page URL")
	scanCmd.Flags().StringVar(&flagScanFile, "file", "", "saved HTML snapshot (file, or directory to use the newest one)")
	addAuthFlags(scanCmd)

	rootCmd.AddCommand(scanCmd)
}

func addAuthFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	c.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	c.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := loadConfig(config.Options{
		HistoryURL: flagScanURL,
		Cookie:     flagCookie,
		CookieFile: flagCookieFile,
		UserAgent:  flagUserAgent,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config: %s\n", usedPath)

	repo, kv, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = kv.Close()
	}()

	src, err := newSource(cfg, flagScanFile, logSvc)
	if err != nil {
		return err
	}

	merger := history.NewMerger(repo)

	var last scanner.Status
	sc := scanner.New(src, merger, scanner.Options{
		PassTimeout: cfg.PassTimeout,
		Log:         logSvc,
		Notifier:    scanner.NotifierFunc(func(st scanner.Status) { last = st }),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sc.Start(ctx)
	sc.Stop()

	if last.Err != nil {
		return last.Err
	}

	// an empty merge only refreshes lastUpdated and the scanning flag
	if _, err := merger.Merge(ctx, nil, false); err != nil {
		logSvc.Warnf("Could not record scan end: %v\n", err)
	}

	fmt.Printf("Added %d new episodes. Total: %d episodes\n", last.NewItems, last.TotalItems)
	return nil
}
