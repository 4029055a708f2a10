package interaction

import (
	"errors"
	"fmt"

	"chat-assistant/internal/model"
)

var (
	ErrInteractionNotFound  = errors.New("interaction not found")
	ErrForbidden            = errors.New("interaction belongs to another user")
	ErrInvalidState         = errors.New("interaction is not in a state that allows this decision")
	ErrInterpretationFailed = errors.New("AI interpretation failed")
	ErrPartialApply         = errors.New("interaction could not be applied")
	ErrEmptyInput           = errors.New("input text is empty")
)

// PartialApplyError reports an approval whose actions were rolled back.
// Results carries one outcome per proposed action.
type PartialApplyError struct {
	InteractionID string
	Results       []model.ActionResult
	Cause         error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("interaction %s could not be applied: %v", e.InteractionID, e.Cause)
}

func (e *PartialApplyError) Is(target error) bool {
	return target == ErrPartialApply
}

func (e *PartialApplyError) Unwrap() error {
	return e.Cause
}
