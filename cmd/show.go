package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagShowSeries  string
	flagShowJSON    bool
	flagShowVerbose bool
	flagShowPerRow  int
)

func init() {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Render the per-season episode grids of the collected history",
		RunE:  runShow,
	}

	showCmd.Flags().StringVar(&flagShowSeries, "series", "", "only show series whose title contains this text")
	showCmd.Flags().BoolVar(&flagShowJSON, "json", false, "print the aggregated view as JSON")
	showCmd.Flags().BoolVarP(&flagShowVerbose, "verbose", "v", false, "list every episode under its grid")
	showCmd.Flags().IntVar(&flagShowPerRow, "per-row", 0, "cells per grid row (default 12)")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(config.Options{})
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

	views := filterSeries(history.Ordered(store.Records), flagShowSeries)

	if flagShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	r := ui.GridRenderer{CellsPerRow: flagShowPerRow, Verbose: flagShowVerbose}
	if err := r.Render(os.Stdout, views, store.LastUpdated); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func filterSeries(views []*history.SeriesView, needle string) []*history.SeriesView {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return views
	}

	out := views[:0:0]
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			out = append(out, v)
		}
	}
	return out
}
