package cmd

import (
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and manage config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig(config.Options{})
		if err != nil {
			return err
		}

		fmt.Printf("Loaded config from:\n  %s\n\n", used)
		cfg.Print()
		fmt.Printf("\nData directory:\n  %s\n", config.DataRoot())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
