package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayDateLayout renders a calendar day as e.g. "Mon Jan 01 2024".
const DisplayDateLayout = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

// fallbackLayouts cover forms dateparse does not guess, such as our own display layout.
var fallbackLayouts = []string{
	DisplayDateLayout,
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2006-01-02T15:04",
	"2006-1-2",
}

// ParseDate parses a user supplied date string in any common format and truncates it
// to its calendar day. Inputs without an offset are read as UTC; time-of-day and
// offset only matter for deciding which day the input names.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
		return Day(t), nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Day returns UTC midnight of the calendar day t falls on in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a stored date with DisplayDateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}
