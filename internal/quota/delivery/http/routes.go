package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
)

// RegisterRoutes maps the quota endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.Usage)
	rg.GET("/history", mw.Auth(), h.History)
}
