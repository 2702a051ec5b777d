package cli

import (
	"context"
	"fmt"

	"worklog/internal/api"
)

// ReportCommand handles the report command
type ReportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	verbose      bool
}

// NewReportCommand creates a new report command handler
func NewReportCommand(apiInstance api.API, verbose bool) *ReportCommand {
	return &ReportCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
		verbose:      verbose,
	}
}

// Execute runs the report command with an optional period argument
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	periodExpr := ""
	if len(args) > 0 {
		periodExpr = args[0]
	}

	out, err := c.api.Report(ctx, periodExpr, c.verbose)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}

	fmt.Print(out)
	return nil
}
