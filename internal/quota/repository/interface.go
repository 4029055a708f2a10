package repository

import (
	"context"

	"chat-assistant/internal/quota"
)

// Repository is the data store for per-user daily AI quota counters.
// Lookups return a zero-value Usage (ID == "") when nothing matches.
type Repository interface {
	FindOrCreate(ctx context.Context, opt FindOrCreateOptions) (quota.Usage, error)
	// IncrementRequestCount returns the updated counter, or a zero value when the ceiling was hit.
	IncrementRequestCount(ctx context.Context, opt IncrementOptions) (quota.Usage, error)
	DecrementRequestCount(ctx context.Context, opt DecrementOptions) (quota.Usage, error)
	FindByUserIDAndDate(ctx context.Context, opt GetOneOptions) (quota.Usage, error)
	FindByUserID(ctx context.Context, opt ListOptions) ([]quota.Usage, error)
}
