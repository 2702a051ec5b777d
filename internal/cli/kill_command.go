package cli

import (
	"context"
	"fmt"

	"worklog/internal/api"
)

// KillCommand handles the kill command
type KillCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewKillCommand creates a new kill command handler
func NewKillCommand(apiInstance api.API) *KillCommand {
	return &KillCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the kill command
func (c *KillCommand) Execute(ctx context.Context, args []string) error {
	minutes, err := c.api.Kill(ctx)
	if err != nil {
		return c.errorHandler.Handle("abandon tracked time", err)
	}

	fmt.Printf("Abandoned %dm; elapsed time counter reset\n", minutes)
	return nil
}
