package http

import (
	"chat-assistant/internal/quota"
	"chat-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc quota.UseCase
}

// New creates the HTTP handler for quota usage views.
func New(l log.Logger, uc quota.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
