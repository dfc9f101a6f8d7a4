package cli

import (
	"github.com/spf13/cobra"

	"worklog/internal/api"
	"worklog/internal/config"
)

// NewRootCommand creates the root cobra command with all subcommands mounted.
func NewRootCommand(apiInstance api.API, cfg *config.Config) *cobra.Command {
	app := NewApp(apiInstance, cfg)

	root := &cobra.Command{
		Use:   "wl",
		Short: "A personal work-log tracker",
		Long: `worklog (wl) records short work entries ("on date D, spent H hours on
project P doing task T") so that at week's end you can reconstruct what
you worked on.

EXAMPLES:
  wl add -p PRJ-001 -m "API design"        # Log work for today, hours auto-filled
  wl add -p PRJ-001 --hours 1.5            # Log 1.5h explicitly
  wl add --date 2024-06-03 -p PRJ-002      # Log work for another day
  wl edit 3f1c… --hours 2.25               # Change an entry's hours
  wl report                                # Review the selected week
  wl report 2024-06-05                     # Review the week containing a date
  wl weeks                                 # List weeks that have entries
  wl suggest 2024-06-03                    # Show the remaining-hours suggestion

CONFIGURATION:
  Settings cascade: defaults < config file (WL_CONFIG_PATH, YAML) < environment.

    WL_STORAGE_BACKEND      json or sqlite (default: json)
    WL_DATA_DIR             Data directory (default: ~/.worklog)
    WL_JSON_FILENAME        JSON blob filename (default: work_logs.json)
    WL_SQLITE_FILENAME      SQLite filename (default: work_logs.db)
    WL_STANDARD_DAY_HOURS   Standard workday length (default: 7.75)
    WL_PROJECT_CODE_MAX     Max project code length (default: 64)
    WL_DESCRIPTION_MAX      Max description length (default: 500)
    WL_DEBUG                Enable debug output when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewAddCommand(app),
		NewEditCommand(app),
		NewDeleteCommand(app),
		NewListCommand(app),
		NewWeeksCommand(app),
		NewReportCommand(app),
		NewSuggestCommand(app),
		NewCodesCommand(app),
	)

	return root
}
