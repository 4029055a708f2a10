package interaction

import (
	"slices"

	"chat-assistant/internal/model"
)

// AutoApprovePolicy selects low-risk interpretations that are approved on submit.
type AutoApprovePolicy struct {
	Enabled       bool
	Kinds         []model.ActionKind
	MaxActions    int
	MinConfidence float64
}

// Allows reports whether every action is of an allowed kind with enough confidence,
// and the batch is no larger than MaxActions (0 means unbounded).
func (p AutoApprovePolicy) Allows(actions []model.ActionDescriptor) bool {
	if !p.Enabled || len(actions) == 0 {
		return false
	}
	if p.MaxActions > 0 && len(actions) > p.MaxActions {
		return false
	}
	for _, a := range actions {
		if !slices.Contains(p.Kinds, a.Kind) || a.Confidence < p.MinConfidence {
			return false
		}
	}
	return true
}
