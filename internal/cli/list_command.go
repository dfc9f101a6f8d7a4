package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command handler.
func NewListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.api.ListEntries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries recorded yet.")
				return nil
			}

			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-12s %6s h  %s\n",
					entry.ID, formatDateWithDay(entry.Date), entry.ProjectCode,
					entry.Hours, dashIfEmpty(entry.Description))
			}
			return nil
		},
	}
}
