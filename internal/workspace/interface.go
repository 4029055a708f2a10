package workspace

import (
	"context"

	"chat-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Apply persists one action for sc. Called inside the approval transaction.
	Apply(ctx context.Context, sc model.Scope, input ApplyInput) (ApplyOutput, error)
	// MirrorReminder copies a reminder into Google Calendar when a calendar is configured.
	MirrorReminder(ctx context.Context, sc model.Scope, reminder Reminder) error

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
}
