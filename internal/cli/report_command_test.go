package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/errors"
)

func TestReportCommand_Execute(t *testing.T) {
	t.Run("should default to an empty period", func(t *testing.T) {
		api := &fakeAPI{}
		cmd := NewReportCommand(api, false)

		require.NoError(t, cmd.Execute(context.Background(), nil))
		assert.Equal(t, "", api.reportExpr)
		assert.False(t, api.reportVerbose)
	})

	t.Run("should pass the period expression through", func(t *testing.T) {
		api := &fakeAPI{}
		cmd := NewReportCommand(api, true)

		require.NoError(t, cmd.Execute(context.Background(), []string{"mtd"}))
		assert.Equal(t, "mtd", api.reportExpr)
		assert.True(t, api.reportVerbose)
	})

	t.Run("should wrap API errors", func(t *testing.T) {
		api := &fakeAPI{err: errors.NewValidationError("no Sunday found in the last week", nil)}
		cmd := NewReportCommand(api, false)

		err := cmd.Execute(context.Background(), []string{"week"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Sunday")
	})
}

func TestKillCommand_Execute(t *testing.T) {
	t.Run("should report the abandoned minutes", func(t *testing.T) {
		api := &fakeAPI{killMinutes: 42}
		cmd := NewKillCommand(api)

		assert.NoError(t, cmd.Execute(context.Background(), nil))
	})

	t.Run("should wrap API errors", func(t *testing.T) {
		api := &fakeAPI{err: errors.NewUnavailableError("elapsed time since last entry")}
		cmd := NewKillCommand(api)

		err := cmd.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unavailable")
	})
}
