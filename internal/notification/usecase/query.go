package usecase

import (
	"context"

	"chat-assistant/internal/model"
	"chat-assistant/internal/notification"
	repo "chat-assistant/internal/notification/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(input.Offset, 0)

	items, err := uc.repo.List(ctx, repo.ListOptions{
		UserID:     sc.UserID,
		UnreadOnly: input.UnreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return notification.ListOutput{}, err
	}
	return notification.ListOutput{Notifications: items, Limit: limit, Offset: offset}, nil
}

func (uc *implUseCase) CountUnread(ctx context.Context, sc model.Scope) (int, error) {
	n, err := uc.repo.CountUnread(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CountUnread: %v", err)
		return 0, err
	}
	return n, nil
}

// MarkRead flags the caller's notification read. A miss is classified by re-reading the row.
func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	ok, err := uc.repo.MarkRead(ctx, repo.MarkReadOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead: %v", err)
		return err
	}
	if ok {
		return nil
	}

	n, err := uc.repo.GetOne(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead GetOne: %v", err)
		return err
	}
	if n.ID == "" {
		return notification.ErrNotificationNotFound
	}
	return notification.ErrForbidden
}
