package http

import (
	"chat-assistant/internal/notification"
	"chat-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates the HTTP handler for the notification inbox.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
