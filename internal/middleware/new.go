package middleware

import (
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/ratelimit"
)

// UserIDHeader carries the caller id set by the upstream authenticating gateway.
const UserIDHeader = "X-User-ID"

type Middleware struct {
	l             log.Logger
	submitLimiter *ratelimit.Limiter
}

func New(l log.Logger, submitLimiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:             l,
		submitLimiter: submitLimiter,
	}
}
