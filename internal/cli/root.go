package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/api"
	"worklog/internal/config"
	"worklog/internal/repository/logfile"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The store
// and API are built in PersistentPreRunE so that flag overrides for the log
// location are honored before any command touches the file.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "wl",
		Short: "A command-line work log",
		Long: `worklog (wl) appends timestamped work entries to a flat log file and
produces aggregated reports over date ranges.

EXAMPLES:
  wl log acme 1h30m fixed the build     # Log 90 minutes on project acme
  wl log acme s standup                 # Log the time elapsed since the last entry
  wl log --date 3d acme 45m             # Log against a date three days back
  wl report                             # Today's totals (the default period)
  wl report week                        # Since the configured week start
  wl report mtd                         # Month to date
  wl report 2024-01-01:+10              # An arbitrary ten-day range
  wl report month --verbose             # Per-day breakdown plus totals
  wl kill                               # Abandon the interval since the last entry
  wl edit                               # Open the log in your editor

PERIODS:
  day (default), week/w, month, mtd/m, year, ytd/y, all/a, or a range
  expression A:B where A is a date ("2024-1-5", "1/5/2024", "Jan 5 2024",
  "3d", "2w") and B is a date, "now", a day of month to advance to, or a
  signed day offset (+10, -10).

DURATIONS:
  90 (minutes), 1h30m, 45m, 2.5h, 30m1h, or "s" for the time elapsed since
  the log was last written.

CONFIGURATION:
  Settings cascade: command-line flags > environment variables > config file
  (~/.worklog/config.yaml) > defaults.

    WL_LOG_DIR        Log directory (default: ~/.worklog)
    WL_LOG_FILENAME   Log filename (default: work.log)
    WL_WEEK_START     First day of the reporting week (default: Sunday)
    WL_EDITOR         Editor for wl edit (default: vi)
    WL_CONFIG         Alternate config file path
    WL_APP_TIMEOUT    Application timeout (default: 60s)
    WL_DEBUG          Enable debug output

  The config file also carries the hourly rates used for wage columns:

    rates:
      acme:
        rate: 85
        currency: EUR`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			store, err := logfile.New(root.config.GetLogPath())
			if err != nil {
				return err
			}
			root.api = api.New(store, root.config)
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("log-dir", "", "Log directory (overrides WL_LOG_DIR)")
	flags.String("log-filename", "", "Log filename (overrides WL_LOG_FILENAME)")
	flags.String("week-start", "", "First day of the reporting week (overrides WL_WEEK_START)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides WL_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var logDate string
	logCmd := &cobra.Command{
		Use:   "log <project> <duration> [comment...]",
		Short: "Append a work entry to the log",
		Long: `Append one timestamped entry to the log.

The duration accepts minutes (90), hour/minute composites in either order
(1h30m, 30m1h, 2.5h), or "s" for the minutes elapsed since the log was last
written. Everything after the duration becomes the entry comment.

Examples:
  wl log acme 1h30m fixed the build
  wl log acme s standup
  wl log --date 2024-01-05 acme 45m`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			logHandler := NewLogCommand(r.api, logDate)
			return logHandler.Execute(ctx, args)
		},
	}
	logCmd.Flags().StringVar(&logDate, "date", "", "Date for the entry (any accepted date form; default today)")

	var verbose bool
	reportCmd := &cobra.Command{
		Use:   "report [period]",
		Short: "Report aggregated totals over a period",
		Long: `Report per-project totals over a resolved date range.

Periods: day (default), week/w, month, mtd/m, year, ytd/y, all/a, or an
arbitrary range expression like 2024-01-01:+10, 1w:now, or Jan 5 2024:15.

Examples:
  wl report
  wl report week
  wl report 2024-01-01:2024-01-31
  wl report mtd --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			reportHandler := NewReportCommand(r.api, verbose)
			return reportHandler.Execute(ctx, args)
		},
	}
	reportCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include the per-day breakdown")

	killCmd := &cobra.Command{
		Use:   "kill",
		Short: "Abandon the interval since the last entry",
		Long: `Reset the elapsed-time baseline used by the "s" duration, reporting how
many minutes are being abandoned. Use after a break that should not be
logged against any project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			killHandler := NewKillCommand(r.api)
			return killHandler.Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the log file in your editor",
		Long:  "Open the log file in the configured editor (WL_EDITOR, default vi). The log is a plain text file and safe to hand-edit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Editor sessions are interactive and should not be cut off by
			// the application timeout.
			editHandler := NewEditCommand(r.api, r.config.Application.Editor)
			return editHandler.Execute(context.Background(), args)
		},
	}

	r.cmd.AddCommand(
		logCmd,
		reportCmd,
		killCmd,
		editCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return nil
	}

	flags := r.cmd.PersistentFlags()

	if logDir, _ := flags.GetString("log-dir"); logDir != "" {
		r.config.Log.Dir = logDir
	}
	if logFilename, _ := flags.GetString("log-filename"); logFilename != "" {
		r.config.Log.Filename = logFilename
	}
	if weekStart, _ := flags.GetString("week-start"); weekStart != "" {
		r.config.Week.Start = weekStart
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}

	return r.config.Validate()
}
