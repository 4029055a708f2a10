package repository

import (
	"chat-assistant/internal/interaction"
	"chat-assistant/internal/model"
)

type CreateOptions struct {
	UserID     string
	SourceText string
	Actions    []model.ActionDescriptor
}

type ListOptions struct {
	UserID string
	Status interaction.Status
	Limit  int
	Offset int
}

// TransitionOptions moves the row (ID, UserID) from From to To in one conditional update.
type TransitionOptions struct {
	ID     string
	UserID string
	From   interaction.Status
	To     interaction.Status
	// Results replaces the stored per-action outcomes when non-nil.
	Results       []model.ActionResult
	FailureReason string
	// Decided stamps decided_at.
	Decided      bool
	AutoApproved bool
}
