package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"chat-assistant/internal/workspace"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", workspace.ErrInvalidPayload, fmt.Sprintf(format, args...))
}

func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return invalid("payload is empty")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func normalizePriority(p string) (string, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "":
		return workspace.DefaultPriority, nil
	case workspace.PriorityP0, workspace.PriorityP1, workspace.PriorityP2, workspace.PriorityP3:
		return p, nil
	}
	return "", invalid("priority %q must be one of p0..p3", p)
}

// resolveTime reads an absolute or relative date value in the user's timezone.
func (uc *implUseCase) resolveTime(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	res, err := uc.dateMath.Resolve(value, uc.now())
	if err != nil {
		return nil, invalid("%s: %v", field, err)
	}
	t := res.AbsoluteTime
	return &t, nil
}

func (uc *implUseCase) decodeTask(raw json.RawMessage, partial bool) (workspace.TaskPayload, error) {
	var p workspace.TaskPayload
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	if !partial && p.Title == "" {
		return p, invalid("task title is required")
	}
	return p, nil
}

func (uc *implUseCase) decodeNote(raw json.RawMessage, partial bool) (workspace.NotePayload, error) {
	var p workspace.NotePayload
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	if !partial && strings.TrimSpace(p.Content) == "" {
		return p, invalid("note content is required")
	}
	return p, nil
}

func (uc *implUseCase) decodeReminder(raw json.RawMessage, partial bool) (workspace.ReminderPayload, error) {
	var p workspace.ReminderPayload
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	p.Message = strings.TrimSpace(p.Message)
	if !partial && p.Message == "" {
		return p, invalid("reminder message is required")
	}
	if !partial && strings.TrimSpace(p.RemindAt) == "" {
		return p, invalid("reminder remind_at is required")
	}
	return p, nil
}

func (uc *implUseCase) decodeCategory(raw json.RawMessage, partial bool) (workspace.CategoryPayload, error) {
	var p workspace.CategoryPayload
	if err := decode(raw, &p); err != nil {
		return p, err
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Color = strings.TrimSpace(p.Color)
	if !partial && p.Name == "" {
		return p, invalid("category name is required")
	}
	return p, nil
}
