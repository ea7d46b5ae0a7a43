package cmd

import (
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/config"

	"github.com/spf13/cobra"
)

var flagResetYes bool

func init() {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all collected history",
		RunE:  runReset,
	}

	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !flagResetYes && !confirm("Are you sure you want to reset your collected history? This cannot be undone") {
		fmt.Println("Aborted.")
		return nil
	}

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

	if err := repo.Reset(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("History reset complete")
	return nil
}
