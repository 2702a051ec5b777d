package cli

import (
	"context"
	"fmt"
	"strings"

	"worklog/internal/api"
	"worklog/internal/errors"
	"worklog/internal/validation"
)

// LogCommand handles the log command
type LogCommand struct {
	api          api.API
	validator    *validation.Validator
	errorHandler *ErrorHandler
	date         string
}

// NewLogCommand creates a new log command handler
func NewLogCommand(apiInstance api.API, date string) *LogCommand {
	return &LogCommand{
		api:          apiInstance,
		validator:    validation.NewValidator(),
		errorHandler: NewErrorHandler(),
		date:         date,
	}
}

// Execute runs the log command. Positional arguments are project, duration,
// then an optional free-form comment.
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: wl log <project> <duration> [comment]", nil)
	}

	project := args[0]
	durationToken := args[1]
	comment := strings.Join(args[2:], " ")

	// With a comment present, a project name that itself parses as a
	// duration almost always means the project and duration arguments were
	// swapped. Caught before anything is written.
	if len(args) >= 3 && c.validator.LooksLikeDuration(project) {
		return errors.NewAmbiguousError(
			fmt.Sprintf("%q looks like a duration; expected wl log <project> <duration> [comment]", project))
	}

	entry, err := c.api.LogWork(ctx, c.date, project, durationToken, comment)
	if err != nil {
		return c.errorHandler.Handle("log entry", err)
	}

	fmt.Printf("Logged %dm on %s (%s)\n", entry.Minutes, entry.Project, entry.Date)
	return nil
}
