package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/notification"
	repo "chat-assistant/internal/notification/repository"
	"chat-assistant/pkg/sqldb"
)

const notificationColumns = `id, user_id, entity_type, entity_id, message, is_read, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(s rowScanner) (notification.Notification, error) {
	var n notification.Notification
	err := s.Scan(&n.ID, &n.UserID, &n.EntityType, &n.EntityID, &n.Message, &n.Read, &n.CreatedAt)
	return n, err
}

// Create inserts a notification. UNIQUE(entity_type, entity_id) makes a second insert
// for the same entity a no-op, reported as created == false.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (notification.Notification, bool, error) {
	query := r.db.Rebind(`
		INSERT INTO notifications (id, user_id, entity_type, entity_id, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, FALSE, ?)
		ON CONFLICT (entity_type, entity_id) DO NOTHING
		RETURNING ` + notificationColumns)

	n, err := scanNotification(r.db.Conn(ctx).QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.EntityType, opt.EntityID, opt.Message, r.now(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return notification.Notification{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		if sqldb.IsTransient(err) {
			return notification.Notification{}, false, repo.ErrStorageContention
		}
		return notification.Notification{}, false, repo.ErrFailedToInsert
	}
	return n, true, nil
}

func (r *implRepository) ExistsForEntity(ctx context.Context, entityType, entityID string) (bool, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM notifications WHERE entity_type = ? AND entity_id = ?`)
	var n int
	if err := r.db.Conn(ctx).QueryRowContext(ctx, query, entityType, entityID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsForEntity"), err)
		return false, repo.ErrFailedToGet
	}
	return n > 0, nil
}

func (r *implRepository) GetOne(ctx context.Context, id string) (notification.Notification, error) {
	query := r.db.Rebind(`SELECT ` + notificationColumns + ` FROM notifications WHERE id = ? LIMIT 1`)
	n, err := scanNotification(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return notification.Notification{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return notification.Notification{}, repo.ErrFailedToGet
	}
	return n, nil
}

// List returns the user's notifications, newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]notification.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.UnreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, opt.Offset)
		}
	}

	rows, err := r.db.Conn(ctx).QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = FALSE`)
	var n int
	if err := r.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUnread"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}

// MarkRead flags the owner's notification as read; false when (ID, UserID) matches nothing.
func (r *implRepository) MarkRead(ctx context.Context, opt repo.MarkReadOptions) (bool, error) {
	query := r.db.Rebind(`UPDATE notifications SET is_read = TRUE WHERE id = ? AND user_id = ?`)
	res, err := r.db.Conn(ctx).ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}
