package logfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "work.log"))
	require.NoError(t, err)
	return store
}

func TestFileStore_AppendAndExtract(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := []domain.LogEntry{
		{Date: "2024-01-05", Project: "acme", Minutes: 45, Comment: "first"},
		{Date: "2024-01-05", Project: "acme", Minutes: 30, Comment: "second"},
		{Date: "2024-01-10", Project: "beta", Minutes: 60, Comment: ""},
		{Date: "2024-02-01", Project: "acme", Minutes: 15, Comment: "outside"},
	}
	for _, entry := range entries {
		require.NoError(t, store.Append(ctx, entry))
	}

	byDate, err := store.ExtractRange(ctx, "2024-01-01", "2024-01-31")

	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Len(t, byDate["2024-01-05"], 2)
	assert.Len(t, byDate["2024-01-10"], 1)

	// Lines within a date keep their append order.
	first, ok := domain.ParseLine(byDate["2024-01-05"][0])
	require.True(t, ok)
	assert.Equal(t, "first", first.Comment)
}

func TestFileStore_ExtractRange_Bounds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-05", "2024-06-15", "2024-12-31"} {
		require.NoError(t, store.Append(ctx, domain.LogEntry{Date: date, Project: "acme", Minutes: 10}))
	}

	tests := []struct {
		name     string
		from, to string
		expected int
	}{
		{name: "should include both inclusive bounds", from: "2024-01-05", to: "2024-12-31", expected: 3},
		{name: "should be unbounded with empty bounds", from: "", to: "", expected: 3},
		{name: "should be unbounded on the left only", from: "", to: "2024-06-15", expected: 2},
		{name: "should be unbounded on the right only", from: "2024-06-15", to: "", expected: 2},
		{name: "should return nothing outside the range", from: "2025-01-01", to: "2025-12-31", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byDate, err := store.ExtractRange(ctx, tt.from, tt.to)

			require.NoError(t, err)
			assert.Len(t, byDate, tt.expected)
		})
	}
}

func TestFileStore_ExtractRange_MissingFile(t *testing.T) {
	store := newTestStore(t)

	byDate, err := store.ExtractRange(context.Background(), "", "")

	require.NoError(t, err)
	assert.Empty(t, byDate)
}

func TestFileStore_MinutesSinceLastWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("should be unavailable before any write", func(t *testing.T) {
		_, err := store.MinutesSinceLastWrite(ctx)

		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnavailable))
	})

	t.Run("should report whole minutes since the last write", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, domain.LogEntry{Date: "2024-01-05", Project: "acme", Minutes: 10}))

		store.now = func() time.Time { return time.Now().Add(42 * time.Minute) }
		minutes, err := store.MinutesSinceLastWrite(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, minutes)
	})
}

func TestFileStore_ResetLastWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.LogEntry{Date: "2024-01-05", Project: "acme", Minutes: 10}))

	// Backdate the file, reset, and confirm the baseline moved to now.
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(store.Path(), past, past))

	require.NoError(t, store.ResetLastWrite(ctx, 120))

	minutes, err := store.MinutesSinceLastWrite(ctx)
	require.NoError(t, err)
	assert.Less(t, minutes, 2)
}

func TestFileStore_Append_RejectsMalformedEntries(t *testing.T) {
	store := newTestStore(t)

	err := store.Append(context.Background(), domain.LogEntry{Date: "someday", Project: "acme", Minutes: 10})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "no file may be created for a rejected entry")
}

func TestFileStore_AppendCreatesFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(context.Background(), domain.LogEntry{Date: "2024-01-05", Project: "acme", Minutes: 10}))

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}
