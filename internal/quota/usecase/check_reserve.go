package usecase

import (
	"context"
	"time"

	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
	repo "chat-assistant/internal/quota/repository"
)

// Check loads (or creates) today's counter and rejects when it is already at the limit.
// It takes no slot; Reserve does.
func (uc *implUseCase) Check(ctx context.Context, sc model.Scope) (quota.Usage, error) {
	today := uc.dateMath.Today(uc.now())

	usage, err := uc.repo.FindOrCreate(ctx, repo.FindOrCreateOptions{UserID: sc.UserID, Date: today})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Check FindOrCreate: %v", err)
		return quota.Usage{}, err
	}
	if usage.RequestCount >= uc.dailyLimit {
		return usage, quota.ErrQuotaExceeded
	}
	return usage, nil
}

// Reserve takes one slot with a single conditional increment, so concurrent callers
// can never push the counter past the limit.
func (uc *implUseCase) Reserve(ctx context.Context, sc model.Scope) (quota.Reservation, error) {
	if uc.dailyLimit <= 0 {
		return quota.Reservation{}, quota.ErrQuotaExceeded
	}
	today := uc.dateMath.Today(uc.now())

	usage, err := uc.repo.IncrementRequestCount(ctx, repo.IncrementOptions{
		UserID:  sc.UserID,
		Date:    today,
		Ceiling: uc.dailyLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reserve IncrementRequestCount: %v", err)
		return quota.Reservation{}, err
	}
	if usage.ID == "" {
		return quota.Reservation{}, quota.ErrQuotaExceeded
	}

	return quota.Reservation{
		Date:  today,
		Count: usage.RequestCount,
		Limit: uc.dailyLimit,
	}, nil
}

// Refund returns a slot taken on date.
func (uc *implUseCase) Refund(ctx context.Context, sc model.Scope, date time.Time) error {
	usage, err := uc.repo.DecrementRequestCount(ctx, repo.DecrementOptions{UserID: sc.UserID, Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refund DecrementRequestCount: %v", err)
		return err
	}
	if usage.ID == "" {
		uc.l.Warnf(ctx, "uc.Refund: nothing to refund for user %s on %s", sc.UserID, date.Format("2006-01-02"))
	}
	return nil
}
