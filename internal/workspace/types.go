package workspace

import (
	"encoding/json"
	"time"

	"chat-assistant/internal/model"
)

// --- Entities ---

type Task struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Priority      string
	DueAt         *time.Time
	CategoryID    string
	InteractionID string
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Note struct {
	ID            string
	UserID        string
	Title         string
	Content       string
	CategoryID    string
	InteractionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Reminder struct {
	ID              string
	UserID          string
	Message         string
	RemindAt        time.Time
	CalendarEventID string
	InteractionID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- Action payloads ---

// Task priorities, p0 most urgent.
const (
	PriorityP0      = "p0"
	PriorityP1      = "p1"
	PriorityP2      = "p2"
	PriorityP3      = "p3"
	DefaultPriority = PriorityP2
)

type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueAt       string `json:"due_at,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
	Completed   *bool  `json:"completed,omitempty"`
}

type NotePayload struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

type ReminderPayload struct {
	Message  string `json:"message"`
	RemindAt string `json:"remind_at"`
}

type CategoryPayload struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// --- UseCase Inputs ---

// ApplyInput is one AI-proposed action to persist on behalf of an interaction.
type ApplyInput struct {
	InteractionID string
	Action        model.ActionDescriptor
}

type ListInput struct {
	Kind   model.ActionKind
	Limit  int
	Offset int
}

// UpdateInput carries a partial payload of Kind's shape; empty fields keep their value.
type UpdateInput struct {
	Kind    model.ActionKind
	ID      string
	Payload json.RawMessage
}

type DeleteInput struct {
	Kind model.ActionKind
	ID   string
}

// --- UseCase Outputs ---

type ApplyOutput struct {
	Kind     model.ActionKind
	EntityID string
	// Reminder is set for reminder actions so callers can mirror it after commit.
	Reminder *Reminder
}

type ListOutput struct {
	Kind       model.ActionKind
	Tasks      []Task
	Notes      []Note
	Reminders  []Reminder
	Categories []Category
}

type UpdateOutput struct {
	Kind     model.ActionKind
	Task     Task
	Note     Note
	Reminder Reminder
	Category Category
}
