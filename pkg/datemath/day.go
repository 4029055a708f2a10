package datemath

import (
	"fmt"
	"time"
)

// DayKeyLayout is the storage form of a calendar day.
const DayKeyLayout = "2006-01-02"

// Today returns the calendar day containing now in the parser's timezone,
// as midnight UTC of that date. Quota rows are keyed on this value.
func (p *Parser) Today(now time.Time) time.Time {
	local := now.In(p.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats a calendar day for storage.
func DayKey(day time.Time) string {
	return day.Format(DayKeyLayout)
}

// ParseDayKey reads a stored calendar day. Drivers that hand the column back as a
// timestamp string are accepted too; only the date part is used.
func ParseDayKey(s string) (time.Time, error) {
	if len(s) < len(DayKeyLayout) {
		return time.Time{}, fmt.Errorf("invalid day key %q", s)
	}
	day, err := time.Parse(DayKeyLayout, s[:len(DayKeyLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", s, err)
	}
	return day, nil
}
