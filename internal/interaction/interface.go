package interaction

import (
	"context"

	"chat-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit interprets text under the daily quota and stores a pending Interaction,
	// approving it at once when the auto-approve policy allows.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (Interaction, error)
	Approve(ctx context.Context, sc model.Scope, id string) (Interaction, error)
	Reject(ctx context.Context, sc model.Scope, id string) (Interaction, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Interaction, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
