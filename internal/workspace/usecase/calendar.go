package usecase

import (
	"context"
	"time"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
	"chat-assistant/pkg/gcalendar"
)

const reminderEventDuration = 15 * time.Minute

// MirrorReminder creates a calendar event for the reminder and records its id.
// A nil calendar or an already mirrored reminder is a no-op.
func (uc *implUseCase) MirrorReminder(ctx context.Context, sc model.Scope, reminder workspace.Reminder) error {
	if uc.calendar == nil || reminder.CalendarEventID != "" {
		return nil
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     reminder.Message,
		Description: "Reminder",
		StartTime:   reminder.RemindAt,
		EndTime:     reminder.RemindAt.Add(reminderEventDuration),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.MirrorReminder CreateEvent: %v", err)
		return err
	}

	_, err = uc.repo.UpdateReminder(ctx, repo.UpdateReminderOptions{
		ID:              reminder.ID,
		UserID:          sc.UserID,
		Message:         reminder.Message,
		RemindAt:        reminder.RemindAt,
		CalendarEventID: event.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MirrorReminder UpdateReminder: %v", err)
		return err
	}
	return nil
}
