package usecase

import (
	"context"
	"fmt"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

// Delete removes one of the caller's entities. A mirrored reminder is also removed
// from the calendar, best effort.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input workspace.DeleteInput) error {
	var (
		ownerID       string
		calendarEvent string
		err           error
	)

	switch input.Kind {
	case model.ActionKindTask:
		var t workspace.Task
		t, err = uc.repo.GetOneTask(ctx, input.ID)
		ownerID = t.UserID
	case model.ActionKindNote:
		var n workspace.Note
		n, err = uc.repo.GetOneNote(ctx, input.ID)
		ownerID = n.UserID
	case model.ActionKindReminder:
		var rm workspace.Reminder
		rm, err = uc.repo.GetOneReminder(ctx, input.ID)
		ownerID, calendarEvent = rm.UserID, rm.CalendarEventID
	case model.ActionKindCategory:
		var c workspace.Category
		c, err = uc.repo.GetOneCategory(ctx, input.ID)
		ownerID = c.UserID
	default:
		return fmt.Errorf("%w: %q", workspace.ErrUnsupportedKind, input.Kind)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOne %s: %v", input.Kind, err)
		return err
	}
	if err := uc.checkOwner(ownerID, sc.UserID); err != nil {
		return err
	}

	opt := repo.DeleteOptions{ID: input.ID, UserID: sc.UserID}
	var deleted bool
	switch input.Kind {
	case model.ActionKindTask:
		deleted, err = uc.repo.DeleteTask(ctx, opt)
	case model.ActionKindNote:
		deleted, err = uc.repo.DeleteNote(ctx, opt)
	case model.ActionKindReminder:
		deleted, err = uc.repo.DeleteReminder(ctx, opt)
	case model.ActionKindCategory:
		deleted, err = uc.repo.DeleteCategory(ctx, opt)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete %s: %v", input.Kind, err)
		return err
	}
	if !deleted {
		return workspace.ErrNotFound
	}

	if calendarEvent != "" && uc.calendar != nil {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, calendarEvent); err != nil {
			uc.l.Warnf(ctx, "uc.Delete calendar.DeleteEvent %s: %v", calendarEvent, err)
		}
	}
	return nil
}
