package interaction

import (
	"time"

	"chat-assistant/internal/model"
)

// Status is the lifecycle state of an Interaction.
// pending -> approved | rejected; approved -> applied | failed.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusApplied  Status = "applied"
	StatusFailed   Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusApplied, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusApplied || s == StatusFailed
}

// Interaction is one AI interpretation of user text awaiting or past its decision.
type Interaction struct {
	ID              string
	UserID          string
	SourceText      string
	ProposedActions []model.ActionDescriptor
	Status          Status
	AutoApproved    bool
	Results         []model.ActionResult
	FailureReason   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DecidedAt       *time.Time
}

// --- UseCase Inputs ---

type SubmitInput struct {
	Text string
}

type ListInput struct {
	// Status filters by state; empty means any.
	Status Status
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Interactions []Interaction
	Limit        int
	Offset       int
}
