package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/errors"
)

// NewSuggestCommand creates the suggest command handler.
func NewSuggestCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [date]",
		Short: "Show the suggested hours for a new entry on a date",
		Long: `Show the hours that would be auto-filled for a new entry on the given
date (default today): the standard workday length minus the hours already
logged for that day. A fully accounted day yields no suggestion.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dateArg string
			if len(args) == 1 {
				dateArg = args[0]
			}
			date, err := parseDateArg(dateArg)
			if err != nil {
				return errors.NewInvalidInputError("date", dateArg, "expected YYYY-MM-DD")
			}

			suggested, ok := app.api.SuggestHours(date)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is fully accounted for; no suggestion.\n", formatDateWithDay(date))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suggested hours for %s: %s\n", formatDateWithDay(date), suggested)
			return nil
		},
	}
}
