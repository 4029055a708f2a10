package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

func scanTask(s rowScanner) (workspace.Task, error) {
	var (
		t     workspace.Task
		dueAt sql.NullTime
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority, &dueAt,
		&t.CategoryID, &t.InteractionID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	t.DueAt = timePtr(dueAt)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (workspace.Task, error) {
	query := r.db.Rebind(`
		INSERT INTO tasks (id, user_id, title, description, priority, due_at, category_id, interaction_id, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, FALSE, ?, ?)
		RETURNING ` + taskColumns)

	now := r.now()
	task, err := scanTask(r.db.Conn(ctx).QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Priority, nullableTime(opt.DueAt),
		opt.CategoryID, opt.InteractionID, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return workspace.Task{}, r.storageErr(err, repo.ErrFailedToInsert)
	}
	return task, nil
}

// GetOneTask returns the task with id regardless of owner, or a zero value.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (workspace.Task, error) {
	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ? LIMIT 1`)
	task, err := scanTask(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return workspace.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a page of the user's tasks.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListOptions) ([]workspace.Task, error) {
	query, args := r.buildListQuery("tasks", taskColumns, opt)
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []workspace.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the owner's task. Zero value when (ID, UserID) matches nothing.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (workspace.Task, error) {
	query := r.db.Rebind(`
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, due_at = ?, category_id = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + taskColumns)

	task, err := scanTask(r.db.Conn(ctx).QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Priority, nullableTime(opt.DueAt), opt.CategoryID, opt.Completed, r.now(),
		opt.ID, opt.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return workspace.Task{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return task, nil
}

// DeleteTask removes the owner's task.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	deleted, err := r.deleteOwned(ctx, "tasks", opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, r.storageErr(err, repo.ErrFailedToDelete)
	}
	return deleted, nil
}
