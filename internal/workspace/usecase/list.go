package usecase

import (
	"context"
	"fmt"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns a page of the caller's entities of one kind.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input workspace.ListInput) (workspace.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	opt := repo.ListOptions{UserID: sc.UserID, Limit: limit, Offset: max(input.Offset, 0)}
	out := workspace.ListOutput{Kind: input.Kind}

	var err error
	switch input.Kind {
	case model.ActionKindTask:
		out.Tasks, err = uc.repo.ListTasks(ctx, opt)
	case model.ActionKindNote:
		out.Notes, err = uc.repo.ListNotes(ctx, opt)
	case model.ActionKindReminder:
		out.Reminders, err = uc.repo.ListReminders(ctx, opt)
	case model.ActionKindCategory:
		out.Categories, err = uc.repo.ListCategories(ctx, opt)
	default:
		return out, fmt.Errorf("%w: %q", workspace.ErrUnsupportedKind, input.Kind)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.List %s: %v", input.Kind, err)
		return workspace.ListOutput{}, err
	}
	return out, nil
}
