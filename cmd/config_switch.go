package cmd

import (
	"errors"
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configSwitchCmd = &cobra.Command{
	Use:   "switch [label]",
	Short: "Switch the active config profile (and with it the history store)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := ""
		if len(args) == 1 {
			label = args[0]
		} else {
			picked, err := pickProfile()
			if err != nil {
				return err
			}
			label = picked
		}

		if err := config.SwitchProfile(label); err != nil {
			return err
		}

		fmt.Println("Switched to:", label)
		if cfg, err := config.LoadProfile(label); err == nil {
			fmt.Printf("History: %s (%s)\n", cfg.StoragePath, cfg.Storage)
		}
		return nil
	},
}

func pickProfile() (string, error) {
	profiles, err := config.ListProfiles()
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", errors.New("no configs available, run `watchgrid config init`")
	}

	items := make([]string, len(profiles))
	cursor := 0
	for i, p := range profiles {
		items[i] = fmt.Sprintf("%s  %s", p.Label, historyColumn(p))
		if p.Active {
			items[i] += "  (active)"
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Select config",
		Items:     items,
		CursorPos: cursor,
		Size:      10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}
	return profiles[idx].Label, nil
}

func init() {
	configCmd.AddCommand(configSwitchCmd)
}
