package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"worklog/internal/errors"
)

// dateForm pairs a pattern with its extractor. Forms are tried in order and
// the first match wins, which keeps the documented priority explicit instead
// of relying on conditional fallthrough.
type dateForm struct {
	pattern *regexp.Regexp
	extract func(matches []string, now time.Time) (time.Time, bool)
}

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var dateForms = []dateForm{
	{
		// "3d" / "2w": N days or weeks back from now
		pattern: regexp.MustCompile(`^(\d+)([dw])$`),
		extract: func(m []string, now time.Time) (time.Time, bool) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, false
			}
			if m[2] == "w" {
				n *= 7
			}
			return AddDays(now, -n), true
		},
	},
	{
		// "2024-1-5": ISO-like, month and day may be 1 or 2 digits
		pattern: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`),
		extract: func(m []string, now time.Time) (time.Time, bool) {
			return civilDate(m[1], m[2], m[3], now.Location())
		},
	},
	{
		// "1/5/2024": US slash form
		pattern: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`),
		extract: func(m []string, now time.Time) (time.Time, bool) {
			return civilDate(m[3], m[1], m[2], now.Location())
		},
	},
	{
		// "Jan 5 2024": 3-letter month abbreviation
		pattern: regexp.MustCompile(`^([A-Za-z]{3}) (\d{1,2}) (\d{4})$`),
		extract: func(m []string, now time.Time) (time.Time, bool) {
			month, ok := monthAbbrevs[strings.ToLower(m[1])]
			if !ok {
				return time.Time{}, false
			}
			day, err := strconv.Atoi(m[2])
			if err != nil {
				return time.Time{}, false
			}
			year, err := strconv.Atoi(m[3])
			if err != nil {
				return time.Time{}, false
			}
			return realDay(year, month, day, now.Location())
		},
	},
}

// ParseDate parses a single date expression into an instant on that calendar
// day. Accepted forms, in priority order: a relative "<N>d"/"<N>w" offset
// back from now, "YYYY-M-D", "M/D/YYYY", and "Mon D YYYY". Anything else is
// a fatal parse error carrying the offending token.
func ParseDate(expr string, now time.Time) (time.Time, error) {
	for _, form := range dateForms {
		matches := form.pattern.FindStringSubmatch(expr)
		if matches == nil {
			continue
		}
		if t, ok := form.extract(matches, now); ok {
			return t, nil
		}
	}
	return time.Time{}, errors.NewParseError("date", expr)
}

func civilDate(yearStr, monthStr, dayStr string, loc *time.Location) (time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	return realDay(year, time.Month(month), day, loc)
}

// realDay builds a noon instant on the given day, rejecting components that
// time.Date would silently normalize (e.g. February 30).
func realDay(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, month, day, 12, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
