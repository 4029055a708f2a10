package http

import (
	"chat-assistant/internal/workspace"
	"chat-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc workspace.UseCase
}

// New creates the HTTP handler for browsing and editing workspace entities.
func New(l log.Logger, uc workspace.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
