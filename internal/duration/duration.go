package duration

import (
	"math"
	"regexp"
	"strconv"

	"worklog/internal/errors"
)

var (
	minutesOnly  = regexp.MustCompile(`^\d+$`)
	hoursMinutes = regexp.MustCompile(`^(\d+(?:\.\d+)?)h(?:(\d+)m)?$`)
	minutesHours = regexp.MustCompile(`^(\d+)m(?:(\d+(?:\.\d+)?)h)?$`)
)

// ElapsedFunc reports whole minutes elapsed since the log was last written.
// It returns an unavailable error when the log has never been written, which
// is distinct from an elapsed time of zero.
type ElapsedFunc func() (int, error)

// Parser turns free-form duration tokens into whole minute counts. The "s"
// sentinel ("since last entry") is resolved through the Elapsed callback so
// the grammar itself stays independent of the log store.
type Parser struct {
	Elapsed ElapsedFunc
}

// NewParser creates a duration parser with the given elapsed-minutes source.
func NewParser(elapsed ElapsedFunc) *Parser {
	return &Parser{Elapsed: elapsed}
}

// Parse converts a duration token to minutes.
//
// An empty token means "no duration specified" and parses to 0; callers on
// the entry-logging path treat a resulting 0 as invalid input. A bare integer
// is minutes. "s" is the minutes elapsed since the last log write. Composite
// tokens accept hours and minutes in either order ("1h30m", "45m", "30m1h");
// hours may carry a fractional part, minutes may not. Anything else is a
// parse error.
func (p *Parser) Parse(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	if token == "s" {
		if p.Elapsed == nil {
			return 0, errors.NewUnavailableError("elapsed time since last entry")
		}
		return p.Elapsed()
	}
	if minutesOnly.MatchString(token) {
		minutes, err := strconv.Atoi(token)
		if err != nil {
			return 0, errors.NewParseError("duration", token)
		}
		return minutes, nil
	}
	if m := hoursMinutes.FindStringSubmatch(token); m != nil {
		return combine(m[1], m[2], token)
	}
	if m := minutesHours.FindStringSubmatch(token); m != nil {
		return combine(m[2], m[1], token)
	}
	return 0, errors.NewParseError("duration", token)
}

// Valid reports whether token is parseable as a non-empty duration. Used by
// the argument-order heuristic to spot project names that look like
// durations; the "s" sentinel counts without consulting the store.
func (p *Parser) Valid(token string) bool {
	if token == "" {
		return false
	}
	if token == "s" {
		return true
	}
	return minutesOnly.MatchString(token) ||
		hoursMinutes.MatchString(token) ||
		minutesHours.MatchString(token)
}

func combine(hoursStr, minutesStr, token string) (int, error) {
	total := 0
	if hoursStr != "" {
		hours, err := strconv.ParseFloat(hoursStr, 64)
		if err != nil {
			return 0, errors.NewParseError("duration", token)
		}
		total += int(math.Round(hours * 60))
	}
	if minutesStr != "" {
		minutes, err := strconv.Atoi(minutesStr)
		if err != nil {
			return 0, errors.NewParseError("duration", token)
		}
		total += minutes
	}
	return total, nil
}
