package datemath

import "time"

// ParseResult holds a resolved date value.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}
