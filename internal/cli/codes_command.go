package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCodesCommand creates the codes command handler.
func NewCodesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the project codes in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := app.api.ProjectCodes()
			if len(codes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries recorded yet.")
				return nil
			}
			for _, code := range codes {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}
