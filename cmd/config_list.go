package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brogergvhs/watchgrid/internal/config"
	"github.com/brogergvhs/watchgrid/internal/storage"

	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the config profiles and where each keeps its history",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := config.ListProfiles()
		if err != nil {
			return fmt.Errorf("cannot read configs directory: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No config profiles yet. Run `watchgrid config init` to create one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, "LABEL\tSTORAGE\tHISTORY\tACTIVE")

		for _, p := range profiles {
			active := ""
			if p.Active {
				active = "*"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Label, p.Storage, historyColumn(p), active)
		}

		if err := w.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush table output: %v\n", err)
		}
		return nil
	},
}

func historyColumn(p config.Profile) string {
	switch {
	case p.Err != nil:
		return fmt.Sprintf("unreadable config: %v", p.Err)
	case p.Storage == storage.BackendMemory:
		return "(not persisted)"
	case !p.HasHistory:
		return p.HistoryPath + " (no history yet)"
	default:
		return p.HistoryPath
	}
}

func init() {
	configCmd.AddCommand(configListCmd)
}
