package quota

import "time"

// Usage is one (user, calendar day) AI request counter.
type Usage struct {
	ID           string
	UserID       string
	UsageDate    time.Time
	RequestCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Outputs ---

// Reservation is a successfully reserved AI call slot.
type Reservation struct {
	Date  time.Time
	Count int
	Limit int
}

type UsageOutput struct {
	Date      time.Time
	Used      int
	Limit     int
	Remaining int
}

type HistoryInput struct {
	Limit int
}

type HistoryOutput struct {
	Usages     []Usage
	Limit      int // page size applied
	DailyLimit int
}
