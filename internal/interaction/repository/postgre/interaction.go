package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/interaction"
	repo "chat-assistant/internal/interaction/repository"
	"chat-assistant/pkg/sqldb"
)

// CreateInteraction stores a pending interaction with the proposed actions verbatim.
func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateOptions) (interaction.Interaction, error) {
	actions, err := json.Marshal(opt.Actions)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToInsert
	}

	query := r.db.Rebind(`
		INSERT INTO interactions (id, user_id, source_text, proposed_actions, status, auto_approved, results, failure_reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, FALSE, '[]', '', ?, ?)
		RETURNING ` + interactionColumns)

	now := r.now()
	it, err := scanInteraction(r.db.Conn(ctx).QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.SourceText, string(actions), string(interaction.StatusPending), now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInteraction"), err)
		return interaction.Interaction{}, r.storageErr(err, repo.ErrFailedToInsert)
	}
	return it, nil
}

func (r *implRepository) GetOneInteraction(ctx context.Context, id string) (interaction.Interaction, error) {
	query := r.db.Rebind(`SELECT ` + interactionColumns + ` FROM interactions WHERE id = ? LIMIT 1`)
	it, err := scanInteraction(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return interaction.Interaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListInteractions returns a page of the user's interactions, newest first.
func (r *implRepository) ListInteractions(ctx context.Context, opt repo.ListOptions) ([]interaction.Interaction, error) {
	query, args := r.buildListQuery(opt)
	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInteractions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []interaction.Interaction
	for rows.Next() {
		it, err := scanInteraction(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInteractions"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// TransitionStatus performs the compare-and-set status change.
func (r *implRepository) TransitionStatus(ctx context.Context, opt repo.TransitionOptions) (interaction.Interaction, error) {
	query, args, err := r.buildTransitionQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("TransitionStatus"), err)
		return interaction.Interaction{}, repo.ErrFailedToUpdate
	}

	var it interaction.Interaction
	err = sqldb.Retry(ctx, r.retry, func() error {
		var err error
		it, err = scanInteraction(r.db.Conn(ctx).QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return interaction.Interaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s %s->%s: %v", r.dsn("TransitionStatus"), opt.From, opt.To, err)
		return interaction.Interaction{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return it, nil
}
