package repository

import (
	"context"

	"chat-assistant/internal/workspace"
)

// Repository is the composed data store for a user's workspace entities.
// GetOne* return a zero value (ID == "") when the id does not exist, whoever owns it.
// Update* and Delete* match on (ID, UserID); a zero value / false means nothing matched.
type Repository interface {
	TaskRepository
	NoteRepository
	ReminderRepository
	CategoryRepository
}

type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (workspace.Task, error)
	GetOneTask(ctx context.Context, id string) (workspace.Task, error)
	ListTasks(ctx context.Context, opt ListOptions) ([]workspace.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (workspace.Task, error)
	DeleteTask(ctx context.Context, opt DeleteOptions) (bool, error)
}

type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (workspace.Note, error)
	GetOneNote(ctx context.Context, id string) (workspace.Note, error)
	ListNotes(ctx context.Context, opt ListOptions) ([]workspace.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (workspace.Note, error)
	DeleteNote(ctx context.Context, opt DeleteOptions) (bool, error)
}

type ReminderRepository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (workspace.Reminder, error)
	GetOneReminder(ctx context.Context, id string) (workspace.Reminder, error)
	ListReminders(ctx context.Context, opt ListOptions) ([]workspace.Reminder, error)
	UpdateReminder(ctx context.Context, opt UpdateReminderOptions) (workspace.Reminder, error)
	DeleteReminder(ctx context.Context, opt DeleteOptions) (bool, error)
}

type CategoryRepository interface {
	FindOrCreateCategory(ctx context.Context, opt FindOrCreateCategoryOptions) (workspace.Category, error)
	GetOneCategory(ctx context.Context, id string) (workspace.Category, error)
	ListCategories(ctx context.Context, opt ListOptions) ([]workspace.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (workspace.Category, error)
	DeleteCategory(ctx context.Context, opt DeleteOptions) (bool, error)
}
