package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chat-assistant/internal/interaction"
	repo "chat-assistant/internal/interaction/repository"
	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
)

// Submit runs check -> reserve -> interpret -> persist. A failed interpretation refunds the
// reserved slot and stores nothing.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input interaction.SubmitInput) (interaction.Interaction, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return interaction.Interaction{}, interaction.ErrEmptyInput
	}

	if _, err := uc.quota.Check(ctx, sc); err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			uc.metrics.QuotaRejections.Add(ctx, 1)
		} else {
			uc.l.Errorf(ctx, "uc.Submit quota.Check: %v", err)
		}
		return interaction.Interaction{}, err
	}

	reservation, err := uc.quota.Reserve(ctx, sc)
	if err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			uc.metrics.QuotaRejections.Add(ctx, 1)
		} else {
			uc.l.Errorf(ctx, "uc.Submit quota.Reserve: %v", err)
		}
		return interaction.Interaction{}, err
	}

	actions, err := uc.interpret(ctx, text)
	if err != nil {
		uc.refund(ctx, sc, reservation.Date)
		return interaction.Interaction{}, fmt.Errorf("%w: %w", interaction.ErrInterpretationFailed, err)
	}

	it, err := uc.repo.CreateInteraction(ctx, repo.CreateOptions{
		UserID:     sc.UserID,
		SourceText: text,
		Actions:    actions,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit CreateInteraction: %v", err)
		return interaction.Interaction{}, err
	}
	uc.metrics.InteractionsSubmitted.Add(ctx, 1)

	if !uc.cfg.AutoApprove.Allows(actions) {
		return it, nil
	}
	uc.l.Infof(ctx, "uc.Submit: auto-approving interaction %s (%d actions)", it.ID, len(actions))
	return uc.approve(ctx, sc, it.ID, true)
}

func (uc *implUseCase) interpret(ctx context.Context, text string) ([]model.ActionDescriptor, error) {
	ictx, cancel := context.WithTimeout(ctx, uc.cfg.InterpretTimeout)
	defer cancel()

	start := time.Now()
	actions, err := uc.interpreter.Interpret(ictx, text)
	uc.metrics.RecordInterpret(ctx, time.Since(start), err == nil)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Submit interpreter.Interpret: %v", err)
		return nil, err
	}
	return actions, nil
}

// refund gives the reserved slot back even when the request context is already done.
func (uc *implUseCase) refund(ctx context.Context, sc model.Scope, date time.Time) {
	if err := uc.quota.Refund(context.WithoutCancel(ctx), sc, date); err != nil {
		uc.l.Errorf(ctx, "uc.Submit quota.Refund: %v", err)
	}
}
