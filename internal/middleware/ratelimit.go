package middleware

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/response"
)

// SubmitRateLimit applies the per-user burst limiter. It must run after Auth.
func (m Middleware) SubmitRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.submitLimiter == nil {
			c.Next()
			return
		}

		sc, _ := model.GetScopeFromContext(c.Request.Context())
		if err := m.submitLimiter.Allow(sc.UserID); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.SubmitRateLimit: user %s: %v", sc.UserID, err)
			response.Error(c, pkgErrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
