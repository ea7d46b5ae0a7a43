package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	flagStorage     string
	flagStoragePath string
	flagStorageKey  string
)

var rootCmd = &cobra.Command{
	Use:   "watchgrid",
	Short: "Collect your Crunchyroll watch history and show per-season completion grids",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&flagStoragePath, "storage-path", "", "database file (sqlite) or directory (file)")
	rootCmd.PersistentFlags().StringVar(&flagStorageKey, "storage-key", "", "key the history is stored under")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
