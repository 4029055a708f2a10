package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

func scanCategory(s rowScanner) (workspace.Category, error) {
	var c workspace.Category
	err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// FindOrCreateCategory returns the user's category by name, inserting it first when absent.
// UNIQUE(user_id, name) makes concurrent creators converge on one row.
func (r *implRepository) FindOrCreateCategory(ctx context.Context, opt repo.FindOrCreateCategoryOptions) (workspace.Category, error) {
	insert := r.db.Rebind(`
		INSERT INTO categories (id, user_id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, name) DO NOTHING`)

	now := r.now()
	if _, err := r.db.Conn(ctx).ExecContext(ctx, insert, uuid.NewString(), opt.UserID, opt.Name, opt.Color, now, now); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("FindOrCreateCategory"), err)
		return workspace.Category{}, r.storageErr(err, repo.ErrFailedToInsert)
	}

	query := r.db.Rebind(`SELECT ` + categoryColumns + ` FROM categories WHERE user_id = ? AND name = ? LIMIT 1`)
	category, err := scanCategory(r.db.Conn(ctx).QueryRowContext(ctx, query, opt.UserID, opt.Name))
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("FindOrCreateCategory"), err)
		return workspace.Category{}, repo.ErrFailedToGet
	}
	return category, nil
}

func (r *implRepository) GetOneCategory(ctx context.Context, id string) (workspace.Category, error) {
	query := r.db.Rebind(`SELECT ` + categoryColumns + ` FROM categories WHERE id = ? LIMIT 1`)
	category, err := scanCategory(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return workspace.Category{}, repo.ErrFailedToGet
	}
	return category, nil
}

func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListOptions) ([]workspace.Category, error) {
	query, args := r.buildListQuery("categories", categoryColumns, opt)
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []workspace.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

// UpdateCategory renames or recolors the owner's category. Renaming onto an existing
// name fails with ErrDuplicate.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (workspace.Category, error) {
	query := r.db.Rebind(`
		UPDATE categories
		SET name = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + categoryColumns)

	category, err := scanCategory(r.db.Conn(ctx).QueryRowContext(ctx, query, opt.Name, opt.Color, r.now(), opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return workspace.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return workspace.Category{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return category, nil
}

func (r *implRepository) DeleteCategory(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	deleted, err := r.deleteOwned(ctx, "categories", opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return false, r.storageErr(err, repo.ErrFailedToDelete)
	}
	return deleted, nil
}
