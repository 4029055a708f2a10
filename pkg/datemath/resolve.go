package datemath

import (
	"strings"
	"time"
)

// Resolve turns a date value from free text or AI output into an absolute time.
// It accepts RFC3339, "2006-01-02T15:04" and "2006-01-02 15:04" in the parser's
// timezone, a bare date (all day), or any relative phrase Parse understands (all day).
func (p *Parser) Resolve(value string, baseTime time.Time) (ParseResult, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return ParseResult{AbsoluteTime: t.UTC()}, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return ParseResult{AbsoluteTime: t.UTC()}, nil
		}
	}
	if t, err := time.ParseInLocation(DayKeyLayout, value, p.location); err == nil {
		return ParseResult{AbsoluteTime: t.UTC(), IsAllDay: true}, nil
	}

	t, err := p.Parse(value, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{AbsoluteTime: t.UTC(), IsAllDay: true}, nil
}
