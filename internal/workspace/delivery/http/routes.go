package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
)

// RegisterRoutes maps the workspace endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:kind", mw.Auth(), h.List)
	rg.PATCH("/:kind/:id", mw.Auth(), h.Update)
	rg.DELETE("/:kind/:id", mw.Auth(), h.Delete)
}
