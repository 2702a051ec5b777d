package report

import (
	"sort"

	"worklog/internal/domain"
)

// DaySummary holds the entries and per-project subtotals for one calendar day.
type DaySummary struct {
	Date      string
	Entries   []domain.LogEntry
	Subtotals map[string]int
	Total     int
}

// Summary is the aggregated result over a resolved date range: chronological
// per-day breakdowns plus grand per-project totals.
type Summary struct {
	Days   []DaySummary
	Totals map[string]int
}

// TotalMinutes sums the grand totals across all projects.
func (s *Summary) TotalMinutes() int {
	total := 0
	for _, minutes := range s.Totals {
		total += minutes
	}
	return total
}

// Aggregate groups the store's raw lines by date and sums minutes per
// project, both per day and across the whole range. Lines that do not parse
// as entries are skipped: the log is hand-editable and a corrupt or annotated
// line must not abort reporting.
func Aggregate(byDate map[string][]string) *Summary {
	summary := &Summary{Totals: make(map[string]int)}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day := DaySummary{Date: date, Subtotals: make(map[string]int)}
		for _, line := range byDate[date] {
			entry, ok := domain.ParseLine(line)
			if !ok {
				continue
			}
			day.Entries = append(day.Entries, entry)
			day.Subtotals[entry.Project] += entry.Minutes
			day.Total += entry.Minutes
			summary.Totals[entry.Project] += entry.Minutes
		}
		if len(day.Entries) > 0 {
			summary.Days = append(summary.Days, day)
		}
	}

	return summary
}
