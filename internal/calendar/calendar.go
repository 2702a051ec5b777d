package calendar

import (
	"strings"
	"time"
)

// DateFormat is the canonical calendar-date layout used throughout the log.
const DateFormat = "2006-01-02"

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// FormatDate converts an instant to its calendar date in local civil time.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// AddDays adds n whole days to the calendar date of t and returns an instant
// on the resulting day. The result is anchored at noon local time: adding
// whole days to a midnight instant can land on the wrong calendar day when a
// daylight-saving shift moves midnight by an hour, so every day-arithmetic
// step goes through this midday bias. Chained calls stay stable because the
// returned instant is never near a day boundary.
func AddDays(t time.Time, n int) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.Add(time.Duration(n)*24*time.Hour + 12*time.Hour)
}

// WeekdayIndex resolves a weekday name or abbreviation to its index
// (Sunday=0 through Saturday=6) by case-insensitive prefix match. The match
// must be unique: "T" is rejected because it matches both Tuesday and
// Thursday, while "Tu" resolves.
func WeekdayIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	prefix := strings.ToLower(name)
	found := -1
	for i, full := range weekdayNames {
		if strings.HasPrefix(strings.ToLower(full), prefix) {
			if found >= 0 {
				return 0, false
			}
			found = i
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}

// WeekdayName is the inverse of WeekdayIndex, optionally truncated to the
// conventional 3-letter abbreviation.
func WeekdayName(index int, short bool) string {
	if index < 0 || index >= len(weekdayNames) {
		return ""
	}
	if short {
		return weekdayNames[index][:3]
	}
	return weekdayNames[index]
}
