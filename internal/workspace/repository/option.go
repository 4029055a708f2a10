package repository

import "time"

// ListOptions pages one user's rows, newest first.
type ListOptions struct {
	UserID string
	Limit  int
	Offset int
}

// DeleteOptions deletes a row only when it belongs to UserID.
type DeleteOptions struct {
	ID     string
	UserID string
}

type CreateTaskOptions struct {
	UserID        string
	Title         string
	Description   string
	Priority      string
	DueAt         *time.Time
	CategoryID    string
	InteractionID string
}

// UpdateTaskOptions overwrites every field of the row matching (ID, UserID).
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    string
	DueAt       *time.Time
	CategoryID  string
	Completed   bool
}

type CreateNoteOptions struct {
	UserID        string
	Title         string
	Content       string
	CategoryID    string
	InteractionID string
}

type UpdateNoteOptions struct {
	ID         string
	UserID     string
	Title      string
	Content    string
	CategoryID string
}

type CreateReminderOptions struct {
	UserID        string
	Message       string
	RemindAt      time.Time
	InteractionID string
}

type UpdateReminderOptions struct {
	ID              string
	UserID          string
	Message         string
	RemindAt        time.Time
	CalendarEventID string
}

// FindOrCreateCategoryOptions returns the user's category called Name, creating it
// with Color when absent.
type FindOrCreateCategoryOptions struct {
	UserID string
	Name   string
	Color  string
}

type UpdateCategoryOptions struct {
	ID     string
	UserID string
	Name   string
	Color  string
}
