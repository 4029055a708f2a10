package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"chat-assistant/internal/interaction"
	repo "chat-assistant/internal/interaction/repository"
)

const interactionColumns = `id, user_id, source_text, proposed_actions, status, auto_approved, results,
	failure_reason, created_at, updated_at, decided_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInteraction(s rowScanner) (interaction.Interaction, error) {
	var (
		it        interaction.Interaction
		actions   string
		results   string
		status    string
		decidedAt sql.NullTime
	)
	if err := s.Scan(&it.ID, &it.UserID, &it.SourceText, &actions, &status, &it.AutoApproved, &results,
		&it.FailureReason, &it.CreatedAt, &it.UpdatedAt, &decidedAt); err != nil {
		return interaction.Interaction{}, err
	}
	it.Status = interaction.Status(status)
	if decidedAt.Valid {
		t := decidedAt.Time
		it.DecidedAt = &t
	}
	if err := json.Unmarshal([]byte(actions), &it.ProposedActions); err != nil {
		return interaction.Interaction{}, fmt.Errorf("decode proposed_actions: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &it.Results); err != nil {
		return interaction.Interaction{}, fmt.Errorf("decode results: %w", err)
	}
	return it, nil
}

func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opt.Status))
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
	return r.db.Rebind(query), args
}

// buildTransitionQuery renders the conditional status update. The WHERE clause carries the
// owner and the expected current state, so exactly one concurrent caller can win.
func (r *implRepository) buildTransitionQuery(opt repo.TransitionOptions) (string, []any, error) {
	now := r.now()
	sets := []string{"status = ?", "updated_at = ?"}
	args := []any{string(opt.To), now}

	if opt.Decided {
		sets = append(sets, "decided_at = ?")
		args = append(args, now)
	}
	if opt.AutoApproved {
		sets = append(sets, "auto_approved = TRUE")
	}
	if opt.Results != nil {
		raw, err := json.Marshal(opt.Results)
		if err != nil {
			return "", nil, err
		}
		sets = append(sets, "results = ?")
		args = append(args, string(raw))
	}
	if opt.FailureReason != "" {
		sets = append(sets, "failure_reason = ?")
		args = append(args, opt.FailureReason)
	}

	query := `UPDATE interactions SET ` + strings.Join(sets, ", ") +
		` WHERE id = ? AND user_id = ? AND status = ? RETURNING ` + interactionColumns
	args = append(args, opt.ID, opt.UserID, string(opt.From))
	return r.db.Rebind(query), args, nil
}
