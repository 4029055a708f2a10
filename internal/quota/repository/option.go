package repository

import "time"

// FindOrCreateOptions identifies the (user, day) counter to load or create at zero.
type FindOrCreateOptions struct {
	UserID string
	Date   time.Time
}

// IncrementOptions adds one to a counter. A positive Ceiling makes the increment
// conditional: it is skipped when the stored count already reached Ceiling.
type IncrementOptions struct {
	UserID  string
	Date    time.Time
	Ceiling int
}

// DecrementOptions takes one from a counter, never going below zero.
type DecrementOptions struct {
	UserID string
	Date   time.Time
}

// GetOneOptions holds filter parameters for fetching a single counter.
type GetOneOptions struct {
	UserID string
	Date   time.Time
}

// ListOptions holds filter and pagination parameters for a user's counters, newest day first.
type ListOptions struct {
	UserID string
	Limit  int
}
