package logfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/logging"
)

// Store defines the interface for log file operations
type Store interface {
	// Append writes one entry as a fixed-width line at the end of the log
	Append(ctx context.Context, entry domain.LogEntry) error

	// ExtractRange returns raw lines grouped by date for dates within
	// [from, to] inclusive; an empty bound means unbounded on that side
	ExtractRange(ctx context.Context, from, to string) (map[string][]string, error)

	// MinutesSinceLastWrite reports whole minutes since the log was last modified
	MinutesSinceLastWrite(ctx context.Context) (int, error)

	// ResetLastWrite clears the elapsed-time baseline, recording the
	// abandoned minutes when the modification time cannot be updated
	ResetLastWrite(ctx context.Context, abandonedMinutes int) error

	// Path returns the backing file path
	Path() string

	// Utility
	Close() error
}

// FileStore implements the Store interface over a flat append-only text file
type FileStore struct {
	path string
	now  func() time.Time
}

// New creates a log file store for the given path, creating the parent
// directory if needed. The file itself is created lazily on first append.
func New(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewStorageError("create log directory", err)
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Close closes the store. The file is opened and closed per operation, so
// there is nothing to release; this keeps the interface shape uniform for
// callers that manage store lifetimes.
func (s *FileStore) Close() error {
	return nil
}

// Append writes one entry line. The file is opened in append mode and closed
// again within this call so the write is a single scoped operation.
func (s *FileStore) Append(ctx context.Context, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !entry.IsValid() {
		return errors.NewValidationError("refusing to append malformed entry", nil)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewStorageError("open log file", err)
	}
	defer f.Close()

	line := entry.FormatLine()
	logging.Debugf("appending: %s\n", line)
	if _, err := fmt.Fprintln(f, line); err != nil {
		return errors.NewStorageError("append entry", err)
	}
	return nil
}

// ExtractRange scans the log and collects raw lines whose leading date token
// falls inside the bounds. Canonical dates compare correctly as strings, so
// no time parsing happens here; lines without a well-formed leading date are
// carried under their raw prefix and fail entry parsing downstream.
func (s *FileStore) ExtractRange(ctx context.Context, from, to string) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, errors.NewStorageError("open log file", err)
	}
	defer f.Close()

	byDate := make(map[string][]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 10 {
			continue
		}
		date := line[:10]
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		byDate[date] = append(byDate[date], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStorageError("read log file", err)
	}
	return byDate, nil
}

// MinutesSinceLastWrite derives elapsed minutes from the file's modification
// time. A log that has never been written is unavailable, distinct from an
// elapsed time of zero.
func (s *FileStore) MinutesSinceLastWrite(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.NewUnavailableError("elapsed time since last entry")
		}
		return 0, errors.NewStorageError("stat log file", err)
	}
	elapsed := s.now().Sub(info.ModTime())
	if elapsed < 0 {
		elapsed = 0
	}
	return int(elapsed / time.Minute), nil
}

// ResetLastWrite bumps the file's modification time to now so a later "s"
// duration counts from this moment. Filesystems that don't honor Chtimes
// (some sync-backed mounts) get an explicit marker line instead; the marker
// starts with "#" so the aggregator's tolerant parser skips it.
func (s *FileStore) ResetLastWrite(ctx context.Context, abandonedMinutes int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := s.now()
	if err := os.Chtimes(s.path, now, now); err == nil {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewStorageError("open log file", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "# reset: abandoned %dm\n", abandonedMinutes); err != nil {
		return errors.NewStorageError("append reset marker", err)
	}
	return nil
}
