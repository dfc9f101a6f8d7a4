package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

// NewReportCommand creates the report command handler.
func NewReportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report [date]",
		Short: "Show the weekly review for the selected week",
		Long: `Show a week's entries grouped by day with daily subtotals, the week
total, and per-project totals. Without an argument the selected week is
shown (the week last touched, or the most recent one). With a date
argument the week containing that date is shown and becomes selected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var weekStart domain.Date
			if len(args) == 1 {
				date, err := domain.ParseDate(args[0])
				if err != nil {
					return errors.NewInvalidInputError("date", args[0], "expected YYYY-MM-DD")
				}
				weekStart = app.api.WeekOf(date)
				app.api.SelectWeek(weekStart)
			} else {
				selected, ok := app.api.SelectedWeek()
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "No entries recorded yet.")
					return nil
				}
				weekStart = selected
			}

			report := app.api.WeekReport(weekStart)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Week %s - %s    total %s h\n",
				report.Week.Start, report.Week.End, report.Total)

			if len(report.Days) == 0 {
				fmt.Fprintln(out, "No entries for this week.")
				return nil
			}

			for _, day := range report.Days {
				fmt.Fprintf(out, "\n%s    day total %s h\n", formatDateWithDay(day.Date), day.Total)
				for _, entry := range day.Entries {
					fmt.Fprintf(out, "  %-12s %6s h  %s\n",
						entry.ProjectCode, entry.Hours, dashIfEmpty(entry.Description))
				}
			}

			fmt.Fprintln(out, "\nPer project:")
			for _, project := range report.Projects {
				fmt.Fprintf(out, "  %-12s %6s h\n", project.ProjectCode, project.Total)
			}
			return nil
		},
	}
}
