package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWeeksCommand creates the weeks command handler.
func NewWeeksCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List the weeks that have entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks := app.api.ListWeeks()
			if len(weeks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries recorded yet.")
				return nil
			}

			selected, hasSelected := app.api.SelectedWeek()
			for _, week := range weeks {
				report := app.api.WeekReport(week.Start)
				marker := " "
				if hasSelected && week.Start == selected {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s - %s  %s h\n",
					marker, week.Start, week.End, report.Total)
			}
			return nil
		},
	}
}
