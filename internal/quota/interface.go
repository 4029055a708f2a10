package quota

import (
	"context"
	"time"

	"chat-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Check fails with ErrQuotaExceeded when today's counter already reached the limit.
	Check(ctx context.Context, sc model.Scope) (Usage, error)
	// Reserve atomically takes one slot of today's quota.
	Reserve(ctx context.Context, sc model.Scope) (Reservation, error)
	// Refund gives back a slot taken by Reserve on the given day.
	Refund(ctx context.Context, sc model.Scope, date time.Time) error

	Usage(ctx context.Context, sc model.Scope) (UsageOutput, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
