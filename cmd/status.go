package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Summarise the stored history",
		RunE:  runStatus,
	})
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := loadConfig(config.Options{})
	if err != nil {
		return err
	}

	repo, kv, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = kv.Close()
	}()

	store, err := repo.Load(cmd.Context())
	if err != nil {
		return err
	}

	counts := map[history.WatchStatus]int{}
	unparsed := 0
	for _, r := range store.Records {
		counts[r.WatchStatus]++
		if !r.Parsed() {
			unparsed++
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Config:\t%s\n", usedPath)
	_, _ = fmt.Fprintf(w, "Storage:\t%s (%s, key %s)\n", cfg.StoragePath, cfg.Storage, repo.Key())
	_, _ = fmt.Fprintf(w, "Episodes:\t%d\n", store.Len())
	_, _ = fmt.Fprintf(w, "Series:\t%d\n", len(history.Aggregate(store.Records)))
	_, _ = fmt.Fprintf(w, "Watched:\t%d\n", counts[history.StatusWatched])
	_, _ = fmt.Fprintf(w, "Partial:\t%d\n", counts[history.StatusPartial])
	_, _ = fmt.Fprintf(w, "Not watched:\t%d\n", counts[history.StatusUnwatched])
	_, _ = fmt.Fprintf(w, "Unknown:\t%d\n", counts[history.StatusUnknown])
	if unparsed > 0 {
		_, _ = fmt.Fprintf(w, "Unparsed titles:\t%d\n", unparsed)
	}
	_, _ = fmt.Fprintf(w, "Scanning:\t%t\n", store.IsScanning)

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println(ui.LastUpdated(store.LastUpdated))
	return nil
}
