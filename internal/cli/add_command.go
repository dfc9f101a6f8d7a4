package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

// NewAddCommand creates the add command handler.
func NewAddCommand(app *App) *cobra.Command {
	var (
		dateFlag    string
		projectCode string
		description string
		hours       float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new work entry",
		Long: `Record a new work entry. When --hours is omitted the remaining hours up
to the standard workday are filled in automatically. If an entry for the
same date and project already exists, no new entry is created; edit the
existing one instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(dateFlag)
			if err != nil {
				return errors.NewInvalidInputError("date", dateFlag, err.Error())
			}

			// Duplicate policy: redirect to the existing entry rather than
			// silently creating a second one for the same (date, project).
			if existing := app.api.FindConflict(date, projectCode, ""); existing != nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"An entry for %s on project %s already exists:\n  %s  %s h  %s\nEdit it instead:\n  wl edit %s\n",
					formatDateWithDay(existing.Date), existing.ProjectCode,
					existing.ID, existing.Hours, dashIfEmpty(existing.Description),
					existing.ID)
				return nil
			}

			if !cmd.Flags().Changed("hours") {
				suggested, ok := app.api.SuggestHours(date)
				if !ok {
					return errors.NewInvalidInputError("hours", nil,
						fmt.Sprintf("%s is already fully accounted for; pass --hours explicitly", date))
				}
				hours = suggested.Hours()
			}

			entry, err := app.api.CreateEntry(cmd.Context(), domain.EntryInput{
				Date:        date,
				ProjectCode: projectCode,
				Description: description,
				Hours:       hours,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s h on %s for %s (%s)\n",
				entry.Hours, entry.ProjectCode, formatDateWithDay(entry.Date), entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date of the work (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&projectCode, "project", "p", "", "project code (required)")
	cmd.Flags().StringVarP(&description, "desc", "m", "", "what the work was")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours spent, in 0.25 steps (default: remaining hours for the day)")
	cmd.MarkFlagRequired("project")

	return cmd
}
