package usecase

import (
	"context"

	"chat-assistant/internal/model"
	"chat-assistant/internal/notification"
	repo "chat-assistant/internal/notification/repository"
	"chat-assistant/pkg/sqldb"
)

func entityKey(entityType, entityID string) string {
	return entityType + ":" + entityID
}

// Record emits at most one notification per entity. The cache is only filled outside a
// transaction; a row written inside one may still be rolled back.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input notification.RecordInput) (notification.RecordOutput, error) {
	key := entityKey(input.EntityType, input.EntityID)
	if uc.seen.Contains(key) {
		return notification.RecordOutput{}, nil
	}
	remember := !sqldb.InTx(ctx)

	exists, err := uc.repo.ExistsForEntity(ctx, input.EntityType, input.EntityID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record ExistsForEntity: %v", err)
		return notification.RecordOutput{}, err
	}
	if exists {
		if remember {
			uc.seen.Add(key, struct{}{})
		}
		return notification.RecordOutput{}, nil
	}

	n, created, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:     sc.UserID,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Message:    input.Message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record Create: %v", err)
		return notification.RecordOutput{}, err
	}
	if remember {
		uc.seen.Add(key, struct{}{})
	}
	return notification.RecordOutput{Notification: n, Created: created}, nil
}
