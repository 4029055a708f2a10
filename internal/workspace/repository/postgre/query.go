package postgre

import (
	"context"
	"database/sql"
	"time"

	repo "chat-assistant/internal/workspace/repository"
)

const (
	taskColumns     = `id, user_id, title, description, priority, due_at, category_id, interaction_id, completed, created_at, updated_at`
	noteColumns     = `id, user_id, title, content, category_id, interaction_id, created_at, updated_at`
	reminderColumns = `id, user_id, message, remind_at, calendar_event_id, interaction_id, created_at, updated_at`
	categoryColumns = `id, user_id, name, color, created_at, updated_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

// buildListQuery builds the SELECT for one user's page of rows, newest first.
func (r *implRepository) buildListQuery(table, columns string, opt repo.ListOptions) (string, []any) {
	query := `SELECT ` + columns + ` FROM ` + table + ` WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, opt.Offset)
		}
	}
	return r.db.Rebind(query), args
}

// deleteOwned deletes the row matching (id, user_id) and reports whether one was removed.
func (r *implRepository) deleteOwned(ctx context.Context, table string, opt repo.DeleteOptions) (bool, error) {
	query := r.db.Rebind(`DELETE FROM ` + table + ` WHERE id = ? AND user_id = ?`)
	res, err := r.db.Conn(ctx).ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
