package http

import (
	"chat-assistant/internal/interaction"
	"chat-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc interaction.UseCase
}

// New creates the HTTP handler for interactions.
func New(l log.Logger, uc interaction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
