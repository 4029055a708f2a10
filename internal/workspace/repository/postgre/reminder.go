package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

func scanReminder(s rowScanner) (workspace.Reminder, error) {
	var rm workspace.Reminder
	err := s.Scan(&rm.ID, &rm.UserID, &rm.Message, &rm.RemindAt, &rm.CalendarEventID, &rm.InteractionID, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

// CreateReminder inserts a new Reminder row and returns the created entity.
func (r *implRepository) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (workspace.Reminder, error) {
	query := r.db.Rebind(`
		INSERT INTO reminders (id, user_id, message, remind_at, calendar_event_id, interaction_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, '', ?, ?, ?)
		RETURNING ` + reminderColumns)

	now := r.now()
	reminder, err := scanReminder(r.db.Conn(ctx).QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Message, opt.RemindAt.UTC(), opt.InteractionID, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return workspace.Reminder{}, r.storageErr(err, repo.ErrFailedToInsert)
	}
	return reminder, nil
}

func (r *implRepository) GetOneReminder(ctx context.Context, id string) (workspace.Reminder, error) {
	query := r.db.Rebind(`SELECT ` + reminderColumns + ` FROM reminders WHERE id = ? LIMIT 1`)
	reminder, err := scanReminder(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReminder"), err)
		return workspace.Reminder{}, repo.ErrFailedToGet
	}
	return reminder, nil
}

func (r *implRepository) ListReminders(ctx context.Context, opt repo.ListOptions) ([]workspace.Reminder, error) {
	query, args := r.buildListQuery("reminders", reminderColumns, opt)
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []workspace.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReminders"), err)
			return nil, repo.ErrFailedToList
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return reminders, nil
}

func (r *implRepository) UpdateReminder(ctx context.Context, opt repo.UpdateReminderOptions) (workspace.Reminder, error) {
	query := r.db.Rebind(`
		UPDATE reminders
		SET message = ?, remind_at = ?, calendar_event_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + reminderColumns)

	reminder, err := scanReminder(r.db.Conn(ctx).QueryRowContext(ctx, query,
		opt.Message, opt.RemindAt.UTC(), opt.CalendarEventID, r.now(), opt.ID, opt.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReminder"), err)
		return workspace.Reminder{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return reminder, nil
}

func (r *implRepository) DeleteReminder(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	deleted, err := r.deleteOwned(ctx, "reminders", opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteReminder"), err)
		return false, r.storageErr(err, repo.ErrFailedToDelete)
	}
	return deleted, nil
}
