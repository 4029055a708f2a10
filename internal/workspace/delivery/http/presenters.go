package http

import (
	"encoding/json"
	"time"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
)

// kindsByPath maps the plural path segment to an entity kind.
var kindsByPath = map[string]model.ActionKind{
	"tasks":      model.ActionKindTask,
	"notes":      model.ActionKindNote,
	"reminders":  model.ActionKindReminder,
	"categories": model.ActionKindCategory,
}

// --- Request DTOs ---

type listReq struct {
	Limit  *int `form:"limit"  binding:"omitempty,min=1,max=200"`
	Offset int  `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput(kind model.ActionKind) workspace.ListInput {
	input := workspace.ListInput{Kind: kind, Offset: r.Offset}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

type updateReq struct {
	Kind    model.ActionKind
	ID      string
	Payload json.RawMessage
}

func (r updateReq) toInput() workspace.UpdateInput {
	return workspace.UpdateInput{Kind: r.Kind, ID: r.ID, Payload: r.Payload}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	CategoryID    string     `json:"category_id,omitempty"`
	InteractionID string     `json:"interaction_id,omitempty"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newTaskResp(t workspace.Task) taskResp {
	return taskResp{
		ID: t.ID, Title: t.Title, Description: t.Description, Priority: t.Priority, DueAt: t.DueAt,
		CategoryID: t.CategoryID, InteractionID: t.InteractionID, Completed: t.Completed,
		CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
}

type noteResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CategoryID    string    `json:"category_id,omitempty"`
	InteractionID string    `json:"interaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newNoteResp(n workspace.Note) noteResp {
	return noteResp{
		ID: n.ID, Title: n.Title, Content: n.Content, CategoryID: n.CategoryID,
		InteractionID: n.InteractionID, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt,
	}
}

type reminderResp struct {
	ID              string    `json:"id"`
	Message         string    `json:"message"`
	RemindAt        time.Time `json:"remind_at"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	InteractionID   string    `json:"interaction_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newReminderResp(r workspace.Reminder) reminderResp {
	return reminderResp{
		ID: r.ID, Message: r.Message, RemindAt: r.RemindAt, CalendarEventID: r.CalendarEventID,
		InteractionID: r.InteractionID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type categoryResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCategoryResp(c workspace.Category) categoryResp {
	return categoryResp{ID: c.ID, Name: c.Name, Color: c.Color, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

type listResp struct {
	Kind  model.ActionKind `json:"kind"`
	Items any              `json:"items"`
}

func (h *handler) newListResp(out workspace.ListOutput) listResp {
	resp := listResp{Kind: out.Kind}
	switch out.Kind {
	case model.ActionKindTask:
		items := make([]taskResp, len(out.Tasks))
		for i, t := range out.Tasks {
			items[i] = newTaskResp(t)
		}
		resp.Items = items
	case model.ActionKindNote:
		items := make([]noteResp, len(out.Notes))
		for i, n := range out.Notes {
			items[i] = newNoteResp(n)
		}
		resp.Items = items
	case model.ActionKindReminder:
		items := make([]reminderResp, len(out.Reminders))
		for i, r := range out.Reminders {
			items[i] = newReminderResp(r)
		}
		resp.Items = items
	case model.ActionKindCategory:
		items := make([]categoryResp, len(out.Categories))
		for i, c := range out.Categories {
			items[i] = newCategoryResp(c)
		}
		resp.Items = items
	}
	return resp
}

func (h *handler) newUpdateResp(out workspace.UpdateOutput) any {
	switch out.Kind {
	case model.ActionKindTask:
		return newTaskResp(out.Task)
	case model.ActionKindNote:
		return newNoteResp(out.Note)
	case model.ActionKindReminder:
		return newReminderResp(out.Reminder)
	default:
		return newCategoryResp(out.Category)
	}
}
