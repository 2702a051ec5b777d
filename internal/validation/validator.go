package validation

import (
	"strings"

	"worklog/internal/calendar"
	"worklog/internal/duration"
)

// Validator provides common validation utilities
type Validator struct {
	durations *duration.Parser
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Grammar checks only; the "s" sentinel is recognized without
		// consulting the store.
		durations: duration.NewParser(nil),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidWeekday checks if a weekday name or prefix resolves unambiguously
func (v *Validator) IsValidWeekday(name string) bool {
	_, ok := calendar.WeekdayIndex(name)
	return ok
}

// LooksLikeDuration reports whether a token intended as a project name is
// itself a valid duration token. Used to catch swapped project/duration
// arguments before anything is written.
func (v *Validator) LooksLikeDuration(token string) bool {
	return v.durations.Valid(token)
}

// IsValidProjectName checks that a project name survives the log format:
// non-empty and free of whitespace, since log lines are whitespace-delimited.
func (v *Validator) IsValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n")
}
