package usecase

import (
	"context"

	"chat-assistant/internal/interaction"
	repo "chat-assistant/internal/interaction/repository"
	"chat-assistant/internal/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	it, err := uc.repo.GetOneInteraction(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		return interaction.Interaction{}, err
	}
	if it.ID == "" {
		return interaction.Interaction{}, interaction.ErrInteractionNotFound
	}
	if it.UserID != sc.UserID {
		return interaction.Interaction{}, interaction.ErrForbidden
	}
	return it, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input interaction.ListInput) (interaction.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(input.Offset, 0)

	items, err := uc.repo.ListInteractions(ctx, repo.ListOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return interaction.ListOutput{}, err
	}
	return interaction.ListOutput{Interactions: items, Limit: limit, Offset: offset}, nil
}
