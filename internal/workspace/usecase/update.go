package usecase

import (
	"context"
	"errors"
	"fmt"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

// Update applies a partial payload to one of the caller's entities.
// Returns ErrNotFound / ErrForbidden when the id is absent / owned by someone else.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.UpdateOutput, error) {
	out := workspace.UpdateOutput{Kind: input.Kind}
	var err error

	switch input.Kind {
	case model.ActionKindTask:
		out.Task, err = uc.updateTask(ctx, sc, input)
	case model.ActionKindNote:
		out.Note, err = uc.updateNote(ctx, sc, input)
	case model.ActionKindReminder:
		out.Reminder, err = uc.updateReminder(ctx, sc, input)
	case model.ActionKindCategory:
		out.Category, err = uc.updateCategory(ctx, sc, input)
	default:
		err = fmt.Errorf("%w: %q", workspace.ErrUnsupportedKind, input.Kind)
	}
	if err != nil {
		return workspace.UpdateOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) updateTask(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return workspace.Task{}, err
	}
	if err := uc.checkOwner(existing.UserID, sc.UserID); err != nil {
		return workspace.Task{}, err
	}

	p, err := uc.decodeTask(input.Payload, true)
	if err != nil {
		return workspace.Task{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       uc.coalesce(p.Title, existing.Title),
		Description: uc.coalesce(p.Description, existing.Description),
		Priority:    existing.Priority,
		DueAt:       existing.DueAt,
		CategoryID:  existing.CategoryID,
		Completed:   existing.Completed,
	}
	if p.Priority != "" {
		if opt.Priority, err = normalizePriority(p.Priority); err != nil {
			return workspace.Task{}, err
		}
	}
	if p.DueAt != "" {
		if opt.DueAt, err = uc.resolveTime("due_at", p.DueAt); err != nil {
			return workspace.Task{}, err
		}
	}
	if p.Category != "" {
		if opt.CategoryID, err = uc.categoryID(ctx, sc.UserID, p.Category); err != nil {
			return workspace.Task{}, err
		}
	}
	if p.Completed != nil {
		opt.Completed = *p.Completed
	}

	task, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return workspace.Task{}, err
	}
	if task.ID == "" {
		return workspace.Task{}, workspace.ErrNotFound
	}
	return task, nil
}

func (uc *implUseCase) updateNote(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.Note, error) {
	existing, err := uc.repo.GetOneNote(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneNote: %v", err)
		return workspace.Note{}, err
	}
	if err := uc.checkOwner(existing.UserID, sc.UserID); err != nil {
		return workspace.Note{}, err
	}

	p, err := uc.decodeNote(input.Payload, true)
	if err != nil {
		return workspace.Note{}, err
	}
	categoryID := existing.CategoryID
	if p.Category != "" {
		if categoryID, err = uc.categoryID(ctx, sc.UserID, p.Category); err != nil {
			return workspace.Note{}, err
		}
	}

	note, err := uc.repo.UpdateNote(ctx, repo.UpdateNoteOptions{
		ID:         existing.ID,
		UserID:     sc.UserID,
		Title:      uc.coalesce(p.Title, existing.Title),
		Content:    uc.coalesce(p.Content, existing.Content),
		CategoryID: categoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return workspace.Note{}, err
	}
	if note.ID == "" {
		return workspace.Note{}, workspace.ErrNotFound
	}
	return note, nil
}

func (uc *implUseCase) updateReminder(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.Reminder, error) {
	existing, err := uc.repo.GetOneReminder(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneReminder: %v", err)
		return workspace.Reminder{}, err
	}
	if err := uc.checkOwner(existing.UserID, sc.UserID); err != nil {
		return workspace.Reminder{}, err
	}

	p, err := uc.decodeReminder(input.Payload, true)
	if err != nil {
		return workspace.Reminder{}, err
	}
	remindAt := existing.RemindAt
	if p.RemindAt != "" {
		t, err := uc.resolveTime("remind_at", p.RemindAt)
		if err != nil {
			return workspace.Reminder{}, err
		}
		remindAt = *t
	}

	reminder, err := uc.repo.UpdateReminder(ctx, repo.UpdateReminderOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		Message:         uc.coalesce(p.Message, existing.Message),
		RemindAt:        remindAt,
		CalendarEventID: existing.CalendarEventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateReminder: %v", err)
		return workspace.Reminder{}, err
	}
	if reminder.ID == "" {
		return workspace.Reminder{}, workspace.ErrNotFound
	}
	return reminder, nil
}

func (uc *implUseCase) updateCategory(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.Category, error) {
	existing, err := uc.repo.GetOneCategory(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return workspace.Category{}, err
	}
	if err := uc.checkOwner(existing.UserID, sc.UserID); err != nil {
		return workspace.Category{}, err
	}

	p, err := uc.decodeCategory(input.Payload, true)
	if err != nil {
		return workspace.Category{}, err
	}

	category, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:     existing.ID,
		UserID: sc.UserID,
		Name:   uc.coalesce(p.Name, existing.Name),
		Color:  uc.coalesce(p.Color, existing.Color),
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return workspace.Category{}, workspace.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return workspace.Category{}, err
	}
	if category.ID == "" {
		return workspace.Category{}, workspace.ErrNotFound
	}
	return category, nil
}
