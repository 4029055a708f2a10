package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/response"
)

// Auth trusts the gateway-provided user id header and puts the caller's Scope on the
// request context. Requests without it are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		ctx = log.WithUserID(ctx, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
