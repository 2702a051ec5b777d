package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"worklog/internal/api"
)

// EditCommand opens the log file in the configured editor
type EditCommand struct {
	api    api.API
	editor string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(apiInstance api.API, editor string) *EditCommand {
	return &EditCommand{
		api:    apiInstance,
		editor: editor,
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, c.editor, c.api.LogPath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", c.editor, err)
	}
	return nil
}
