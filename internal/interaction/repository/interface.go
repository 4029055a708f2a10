package repository

import (
	"context"

	"chat-assistant/internal/interaction"
)

// Repository is the interaction data store.
type Repository interface {
	CreateInteraction(ctx context.Context, opt CreateOptions) (interaction.Interaction, error)
	// GetOneInteraction returns the row regardless of owner, or a zero value (ID == "").
	GetOneInteraction(ctx context.Context, id string) (interaction.Interaction, error)
	ListInteractions(ctx context.Context, opt ListOptions) ([]interaction.Interaction, error)
	// TransitionStatus returns a zero value when no row matched (ID, UserID, From).
	TransitionStatus(ctx context.Context, opt TransitionOptions) (interaction.Interaction, error)
}
