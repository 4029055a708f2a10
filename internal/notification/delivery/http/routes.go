package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
)

// RegisterRoutes maps the notification endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/unread-count", mw.Auth(), h.UnreadCount)
	rg.POST("/:id/read", mw.Auth(), h.MarkRead)
}
