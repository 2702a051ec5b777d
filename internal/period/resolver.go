package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"worklog/internal/calendar"
	"worklog/internal/errors"
)

// Range is a resolved pair of inclusive calendar-date bounds. Both bounds
// empty means "all history": no date filtering at either end.
type Range struct {
	From string
	To   string
}

// Unbounded reports whether the range covers all history.
func (r Range) Unbounded() bool {
	return r.From == "" && r.To == ""
}

var (
	allDigits    = regexp.MustCompile(`^\d+$`)
	signedOffset = regexp.MustCompile(`^([+-])(\d+)$`)
)

// Resolve turns a period keyword or arbitrary range expression into concrete
// calendar-date bounds. Named periods: day (the default), week/w, month,
// mtd/m, year, ytd/y, all/a. Anything else is treated as an "A:B" range
// expression. weekStart is the configured first day of the reporting week
// (Sunday=0).
func Resolve(expr string, now time.Time, weekStart int) (Range, error) {
	today := calendar.FormatDate(now)

	switch expr {
	case "", "day":
		return Range{From: today, To: today}, nil

	case "week", "w":
		return weekRange(now, weekStart, today)

	case "month":
		// Last day of the month is the first day of the next month minus
		// one; time.Date normalizes month 13, so December rolls over.
		first := calendar.AddDays(now, -(now.Day() - 1))
		nextFirst := time.Date(now.Year(), now.Month()+1, 1, 12, 0, 0, 0, now.Location())
		last := calendar.AddDays(nextFirst, -1)
		return Range{From: calendar.FormatDate(first), To: calendar.FormatDate(last)}, nil

	case "mtd", "m":
		first := calendar.AddDays(now, -(now.Day() - 1))
		return Range{From: calendar.FormatDate(first), To: today}, nil

	case "year":
		return Range{
			From: fmt.Sprintf("%04d-01-01", now.Year()),
			To:   fmt.Sprintf("%04d-12-31", now.Year()),
		}, nil

	case "ytd", "y":
		first := calendar.AddDays(now, -(now.YearDay() - 1))
		return Range{From: calendar.FormatDate(first), To: today}, nil

	case "all", "a":
		return Range{}, nil
	}

	return resolveExpression(expr, now, today)
}

// weekRange walks back from the reference date to the most recent occurrence
// of the configured week-start weekday.
func weekRange(now time.Time, weekStart int, today string) (Range, error) {
	for i := 0; i < 7; i++ {
		candidate := calendar.AddDays(now, -i)
		if int(candidate.Weekday()) == weekStart {
			return Range{From: calendar.FormatDate(candidate), To: today}, nil
		}
	}
	return Range{}, errors.NewValidationError(
		fmt.Sprintf("no %s found in the last week", calendar.WeekdayName(weekStart, false)), nil)
}

// resolveExpression handles the arbitrary "A:B" grammar. A must parse as a
// date. B may be absent (single day), the "now" sentinel, a date, a bare
// day-of-month to advance to, or a signed day offset. The earlier date always
// comes first. Failures here are recoverable: the report path falls back to
// a single-day range at the reference date.
func resolveExpression(expr string, now time.Time, today string) (Range, error) {
	first, rest, hasRest := strings.Cut(expr, ":")

	start, err := calendar.ParseDate(first, now)
	if err != nil {
		return Range{}, errors.NewParseError("period or range", expr)
	}
	from := calendar.FormatDate(start)

	if !hasRest || rest == "" {
		return Range{From: from, To: from}, nil
	}
	if rest == "now" {
		return Range{From: from, To: today}, nil
	}
	if end, err := calendar.ParseDate(rest, now); err == nil {
		return Range{From: from, To: calendar.FormatDate(end)}, nil
	}
	if allDigits.MatchString(rest) {
		return advanceToDay(start, rest, from, expr)
	}
	if m := signedOffset.FindStringSubmatch(rest); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Range{}, errors.NewParseError("period or range", expr)
		}
		if m[1] == "-" {
			earlier := calendar.FormatDate(calendar.AddDays(start, -n))
			return Range{From: earlier, To: from}, nil
		}
		later := calendar.FormatDate(calendar.AddDays(start, n))
		return Range{From: from, To: later}, nil
	}
	return Range{}, errors.NewParseError("period or range", expr)
}

// advanceToDay steps forward from the start date until the day of month
// equals the target, i.e. "the Nth of the next applicable month". Any target
// in 1..31 is reached within two months of stepping.
func advanceToDay(start time.Time, digits, from, expr string) (Range, error) {
	target, err := strconv.Atoi(digits)
	if err != nil || target < 1 || target > 31 {
		return Range{}, errors.NewParseError("period or range", expr)
	}
	cursor := start
	for i := 0; cursor.Day() != target; i++ {
		if i > 62 {
			return Range{}, errors.NewParseError("period or range", expr)
		}
		cursor = calendar.AddDays(cursor, 1)
	}
	return Range{From: from, To: calendar.FormatDate(cursor)}, nil
}

// IsUnresolvable reports whether a Resolve failure is the recoverable kind
// (an arbitrary expression that matched no form) as opposed to a fatal
// configuration problem like a missing week-start weekday.
func IsUnresolvable(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeParse)
}
