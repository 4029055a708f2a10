package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

func scanNote(s rowScanner) (workspace.Note, error) {
	var n workspace.Note
	err := s.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CategoryID, &n.InteractionID, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// CreateNote inserts a new Note row and returns the created entity.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (workspace.Note, error) {
	query := r.db.Rebind(`
		INSERT INTO notes (id, user_id, title, content, category_id, interaction_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + noteColumns)

	now := r.now()
	note, err := scanNote(r.db.Conn(ctx).QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Content, opt.CategoryID, opt.InteractionID, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return workspace.Note{}, r.storageErr(err, repo.ErrFailedToInsert)
	}
	return note, nil
}

func (r *implRepository) GetOneNote(ctx context.Context, id string) (workspace.Note, error) {
	query := r.db.Rebind(`SELECT ` + noteColumns + ` FROM notes WHERE id = ? LIMIT 1`)
	note, err := scanNote(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return workspace.Note{}, repo.ErrFailedToGet
	}
	return note, nil
}

func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListOptions) ([]workspace.Note, error) {
	query, args := r.buildListQuery("notes", noteColumns, opt)
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var notes []workspace.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return notes, nil
}

func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (workspace.Note, error) {
	query := r.db.Rebind(`
		UPDATE notes
		SET title = ?, content = ?, category_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + noteColumns)

	note, err := scanNote(r.db.Conn(ctx).QueryRowContext(ctx, query,
		opt.Title, opt.Content, opt.CategoryID, r.now(), opt.ID, opt.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return workspace.Note{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return note, nil
}

func (r *implRepository) DeleteNote(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	deleted, err := r.deleteOwned(ctx, "notes", opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return false, r.storageErr(err, repo.ErrFailedToDelete)
	}
	return deleted, nil
}
