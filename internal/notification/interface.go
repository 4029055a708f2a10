package notification

import (
	"context"

	"chat-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record emits the entity's notification once; repeated calls are no-ops.
	Record(ctx context.Context, sc model.Scope, input RecordInput) (RecordOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	CountUnread(ctx context.Context, sc model.Scope) (int, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) error
}
