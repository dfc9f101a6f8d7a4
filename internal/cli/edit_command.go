package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

// NewEditCommand creates the edit command handler.
func NewEditCommand(app *App) *cobra.Command {
	var (
		dateFlag    string
		projectCode string
		description string
		hours       float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing entry",
		Long: `Change the date, project, description, or hours of an existing entry.
Only the flags you pass are changed; the entry's identity and creation
time are preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			patch := domain.EntryPatch{}

			if cmd.Flags().Changed("date") {
				date, err := domain.ParseDate(dateFlag)
				if err != nil {
					return errors.NewInvalidInputError("date", dateFlag, "expected YYYY-MM-DD")
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("project") {
				patch.ProjectCode = &projectCode
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("hours") {
				patch.Hours = &hours
			}

			if patch.Date == nil && patch.ProjectCode == nil && patch.Description == nil && patch.Hours == nil {
				return errors.NewInvalidInputError("flags", nil, "nothing to change; pass at least one of --date, --project, --desc, --hours")
			}

			entry, err := app.api.UpdateEntry(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s  %s  %s h  %s\n",
				entry.ID, formatDateWithDay(entry.Date), entry.ProjectCode,
				entry.Hours, dashIfEmpty(entry.Description))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&projectCode, "project", "p", "", "new project code")
	cmd.Flags().StringVarP(&description, "desc", "m", "", "new description")
	cmd.Flags().Float64Var(&hours, "hours", 0, "new hours value, in 0.25 steps")

	return cmd
}
