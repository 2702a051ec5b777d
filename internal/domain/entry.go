package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dateToken matches the leading calendar-date token of a well-formed log line.
var dateToken = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LogEntry represents one logged unit of work in the domain model.
// This is a pure domain model without file-format concerns beyond the
// canonical calendar-date string.
type LogEntry struct {
	Date    string
	Project string
	Minutes int
	Comment string
}

// IsValid checks if the entry has valid data.
func (e LogEntry) IsValid() bool {
	if !dateToken.MatchString(e.Date) {
		return false
	}
	if strings.TrimSpace(e.Project) == "" {
		return false
	}
	return e.Minutes > 0
}

// FormatLine renders the entry as one fixed-width log line. The project is
// left-padded to 12 characters and minutes to 3 digits so hand-edited logs
// stay column-aligned. Newlines inside the comment are collapsed so one
// entry is always one line.
func (e LogEntry) FormatLine() string {
	comment := strings.ReplaceAll(e.Comment, "\r\n", "\n")
	comment = strings.ReplaceAll(comment, "\n", ". ")
	return fmt.Sprintf("%s  %-12s  %3d  %s", e.Date, e.Project, e.Minutes, comment)
}

// ParseLine parses one raw log line into a LogEntry. The log file is a
// hand-editable artifact, so lines that do not match the expected
// "date project minutes comment" shape report ok=false and are skipped by
// callers rather than aborting the whole report.
func ParseLine(line string) (LogEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return LogEntry{}, false
	}
	if !dateToken.MatchString(fields[0]) {
		return LogEntry{}, false
	}
	minutes, err := strconv.Atoi(fields[2])
	if err != nil || minutes < 0 {
		return LogEntry{}, false
	}
	return LogEntry{
		Date:    fields[0],
		Project: fields[1],
		Minutes: minutes,
		Comment: strings.Join(fields[3:], " "),
	}, true
}
