package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
)

// RegisterRoutes maps the interaction endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), mw.SubmitRateLimit(), h.Submit)
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.POST("/:id/approve", mw.Auth(), h.Approve)
	rg.POST("/:id/reject", mw.Auth(), h.Reject)
}
