package usecase

import (
	"context"
	"fmt"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

// Apply persists one AI-proposed action for the caller. The payload is validated
// against its kind; task and note categories are found or created by name.
func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, input workspace.ApplyInput) (workspace.ApplyOutput, error) {
	action := input.Action
	out := workspace.ApplyOutput{Kind: action.Kind}

	switch action.Kind {
	case model.ActionKindTask:
		task, err := uc.applyTask(ctx, sc, input)
		if err != nil {
			return out, err
		}
		out.EntityID = task.ID

	case model.ActionKindNote:
		p, err := uc.decodeNote(action.Payload, false)
		if err != nil {
			return out, err
		}
		categoryID, err := uc.categoryID(ctx, sc.UserID, p.Category)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply categoryID: %v", err)
			return out, err
		}
		note, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
			UserID:        sc.UserID,
			Title:         p.Title,
			Content:       p.Content,
			CategoryID:    categoryID,
			InteractionID: input.InteractionID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply CreateNote: %v", err)
			return out, err
		}
		out.EntityID = note.ID

	case model.ActionKindReminder:
		p, err := uc.decodeReminder(action.Payload, false)
		if err != nil {
			return out, err
		}
		remindAt, err := uc.resolveTime("remind_at", p.RemindAt)
		if err != nil {
			return out, err
		}
		reminder, err := uc.repo.CreateReminder(ctx, repo.CreateReminderOptions{
			UserID:        sc.UserID,
			Message:       p.Message,
			RemindAt:      *remindAt,
			InteractionID: input.InteractionID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply CreateReminder: %v", err)
			return out, err
		}
		out.EntityID = reminder.ID
		out.Reminder = &reminder

	case model.ActionKindCategory:
		p, err := uc.decodeCategory(action.Payload, false)
		if err != nil {
			return out, err
		}
		category, err := uc.repo.FindOrCreateCategory(ctx, repo.FindOrCreateCategoryOptions{
			UserID: sc.UserID,
			Name:   p.Name,
			Color:  p.Color,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply FindOrCreateCategory: %v", err)
			return out, err
		}
		out.EntityID = category.ID

	default:
		return out, fmt.Errorf("%w: %q", workspace.ErrUnsupportedKind, action.Kind)
	}

	return out, nil
}

func (uc *implUseCase) applyTask(ctx context.Context, sc model.Scope, input workspace.ApplyInput) (workspace.Task, error) {
	p, err := uc.decodeTask(input.Action.Payload, false)
	if err != nil {
		return workspace.Task{}, err
	}
	priority, err := normalizePriority(p.Priority)
	if err != nil {
		return workspace.Task{}, err
	}
	dueAt, err := uc.resolveTime("due_at", p.DueAt)
	if err != nil {
		return workspace.Task{}, err
	}
	categoryID, err := uc.categoryID(ctx, sc.UserID, p.Category)
	if err != nil {
		uc.l.Errorf(ctx, "uc.applyTask categoryID: %v", err)
		return workspace.Task{}, err
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:        sc.UserID,
		Title:         p.Title,
		Description:   p.Description,
		Priority:      priority,
		DueAt:         dueAt,
		CategoryID:    categoryID,
		InteractionID: input.InteractionID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.applyTask CreateTask: %v", err)
		return workspace.Task{}, err
	}
	return task, nil
}
