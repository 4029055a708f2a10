package interpreter

import (
	"context"

	"chat-assistant/internal/model"
)

// Interpreter turns free-form user text into structured actions.
//
//go:generate mockery --name Interpreter
type Interpreter interface {
	// Interpret returns at least one action, or an error. It never persists anything.
	Interpret(ctx context.Context, text string) ([]model.ActionDescriptor, error)
}
