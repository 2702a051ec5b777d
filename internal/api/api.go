package api

import (
	"context"
	"time"

	"worklog/internal/calendar"
	"worklog/internal/config"
	"worklog/internal/domain"
	"worklog/internal/duration"
	"worklog/internal/errors"
	"worklog/internal/logging"
	"worklog/internal/period"
	"worklog/internal/report"
	"worklog/internal/repository/logfile"
	"worklog/internal/validation"
)

// API is the business facade consumed by the CLI commands. Every operation
// resolves dates or durations first and then drives the store with the
// resolved values.
type API interface {
	// LogWork appends one entry. An empty date means today; durationToken
	// accepts the full duration grammar including the "s" sentinel.
	LogWork(ctx context.Context, date, project, durationToken, comment string) (domain.LogEntry, error)

	// Report resolves a period keyword or range expression and renders the
	// aggregated totals table, preceded by a per-day breakdown when verbose.
	Report(ctx context.Context, periodExpr string, verbose bool) (string, error)

	// Kill abandons the interval since the last write and resets the
	// baseline, returning the abandoned minute count.
	Kill(ctx context.Context) (int, error)

	// LogPath returns the backing log file path
	LogPath() string
}

type apiImpl struct {
	store     logfile.Store
	cfg       *config.Config
	durations *duration.Parser
	validator *validation.Validator
	now       func() time.Time
}

// New creates an API instance over the given store and configuration
func New(store logfile.Store, cfg *config.Config) API {
	a := &apiImpl{
		store:     store,
		cfg:       cfg,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
	a.durations = duration.NewParser(func() (int, error) {
		return store.MinutesSinceLastWrite(context.Background())
	})
	return a
}

// LogWork appends one entry after resolving its date and duration
func (a *apiImpl) LogWork(ctx context.Context, date, project, durationToken, comment string) (domain.LogEntry, error) {
	if !a.validator.IsValidProjectName(project) {
		return domain.LogEntry{}, errors.NewValidationError("project name must be a single non-empty word: "+project, nil)
	}

	minutes, err := a.durations.Parse(durationToken)
	if err != nil {
		return domain.LogEntry{}, err
	}
	// An empty or zero duration is "no duration" elsewhere, but an entry
	// without tracked time is user error here.
	if minutes <= 0 {
		return domain.LogEntry{}, errors.NewParseError("duration", durationToken)
	}

	day := calendar.FormatDate(a.now())
	if date != "" {
		t, err := calendar.ParseDate(date, a.now())
		if err != nil {
			return domain.LogEntry{}, err
		}
		day = calendar.FormatDate(t)
	}

	entry := domain.LogEntry{
		Date:    day,
		Project: project,
		Minutes: minutes,
		Comment: comment,
	}
	if err := a.store.Append(ctx, entry); err != nil {
		return domain.LogEntry{}, err
	}
	return entry, nil
}

// Report resolves the period, extracts matching entries, and renders them
func (a *apiImpl) Report(ctx context.Context, periodExpr string, verbose bool) (string, error) {
	now := a.now()
	rng, err := period.Resolve(periodExpr, now, a.cfg.WeekStartIndex())
	if err != nil {
		if !period.IsUnresolvable(err) {
			return "", err
		}
		// An expression that matched no form degrades to a single-day
		// report at the reference date.
		logging.Debugf("unresolvable period %q, falling back to today\n", periodExpr)
		today := calendar.FormatDate(now)
		rng = period.Range{From: today, To: today}
	}

	byDate, err := a.store.ExtractRange(ctx, rng.From, rng.To)
	if err != nil {
		return "", err
	}

	summary := report.Aggregate(byDate)
	out := ""
	if verbose {
		out = report.RenderDays(summary.Days)
	}
	return out + report.Render(summary.Totals, a.cfg.Rates), nil
}

// Kill abandons the untracked interval since the last write
func (a *apiImpl) Kill(ctx context.Context) (int, error) {
	minutes, err := a.store.MinutesSinceLastWrite(ctx)
	if err != nil {
		return 0, err
	}
	if err := a.store.ResetLastWrite(ctx, minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// LogPath returns the backing log file path
func (a *apiImpl) LogPath() string {
	return a.store.Path()
}
