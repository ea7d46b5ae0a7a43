package cmd

import (
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/config"

	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the active config profile to the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, activePath, err := config.ActiveProfile()
		if err != nil {
			return fmt.Errorf("%w: run `watchgrid config init` first", err)
		}

		if !confirm(fmt.Sprintf("Overwrite %s with the defaults", activePath)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := config.SaveYAML(config.DefaultConfig(), activePath); err != nil {
			return err
		}

		fmt.Printf("Reset active config: %s\n", activePath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
