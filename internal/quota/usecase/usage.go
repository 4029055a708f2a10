package usecase

import (
	"context"

	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
	repo "chat-assistant/internal/quota/repository"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 366
)

// Usage reports today's consumption. It reads without creating a counter.
func (uc *implUseCase) Usage(ctx context.Context, sc model.Scope) (quota.UsageOutput, error) {
	today := uc.dateMath.Today(uc.now())

	usage, err := uc.repo.FindByUserIDAndDate(ctx, repo.GetOneOptions{UserID: sc.UserID, Date: today})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Usage FindByUserIDAndDate: %v", err)
		return quota.UsageOutput{}, err
	}

	remaining := uc.dailyLimit - usage.RequestCount
	if remaining < 0 {
		remaining = 0
	}
	return quota.UsageOutput{
		Date:      today,
		Used:      usage.RequestCount,
		Limit:     uc.dailyLimit,
		Remaining: remaining,
	}, nil
}

// History lists past counters, newest day first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input quota.HistoryInput) (quota.HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	usages, err := uc.repo.FindByUserID(ctx, repo.ListOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History FindByUserID: %v", err)
		return quota.HistoryOutput{}, err
	}
	return quota.HistoryOutput{Usages: usages, Limit: limit, DailyLimit: uc.dailyLimit}, nil
}
