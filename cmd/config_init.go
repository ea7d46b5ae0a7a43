package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/watchgrid/internal/config"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config profile and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultPath := config.ProfilePath(config.DefaultProfile)

		if _, err := os.Stat(defaultPath); err != nil {
			fmt.Println("Default configuration:")
			config.DefaultConfig().Print()
			fmt.Println()

			if !confirm(fmt.Sprintf("Create Default config at %s", defaultPath)) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		path, err := config.InitDefaultProfile()
		if errors.Is(err, os.ErrExist) {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			fmt.Println("It is now active. Use `watchgrid config reset` to restore the defaults.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Println("This config is now active (label: Default).")
		fmt.Println("History will be stored under:", config.ProfileDataDir(config.DefaultProfile))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
