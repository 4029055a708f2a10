package model

import "encoding/json"

// ActionKind is the kind of entity an AI-proposed action creates.
type ActionKind string

const (
	ActionKindTask     ActionKind = "task"
	ActionKindNote     ActionKind = "note"
	ActionKindReminder ActionKind = "reminder"
	ActionKindCategory ActionKind = "category"
)

// ActionKinds lists every supported kind in a stable order.
var ActionKinds = []ActionKind{ActionKindTask, ActionKindNote, ActionKindReminder, ActionKindCategory}

// IsValid reports whether k is a supported kind.
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionKindTask, ActionKindNote, ActionKindReminder, ActionKindCategory:
		return true
	}
	return false
}

// ActionDescriptor is one structured action proposed by the AI provider.
// Payload is kept verbatim; its schema depends on Kind.
type ActionDescriptor struct {
	Kind       ActionKind      `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Confidence float64         `json:"confidence"`
}

// ActionOutcome is the result of applying one action.
type ActionOutcome string

const (
	ActionOutcomeApplied    ActionOutcome = "applied"
	ActionOutcomeFailed     ActionOutcome = "failed"
	ActionOutcomeRolledBack ActionOutcome = "rolled_back"
	ActionOutcomeSkipped    ActionOutcome = "skipped"
)

// ActionResult records what happened to the action at Index.
type ActionResult struct {
	Index    int           `json:"index"`
	Kind     ActionKind    `json:"kind"`
	Outcome  ActionOutcome `json:"outcome"`
	EntityID string        `json:"entity_id,omitempty"`
	Error    string        `json:"error,omitempty"`
}
