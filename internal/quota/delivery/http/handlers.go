package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/response"
)

// Usage godoc
// @Summary     Today's AI quota
// @Description Returns how many AI interpretations the caller used today and how many remain.
// @Tags        Quota
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Success     200 {object} usageResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quota [GET]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	output, err := h.uc.Usage(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Usage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUsageResp(output))
}

// History godoc
// @Summary     AI quota history
// @Description Returns the caller's daily counters, newest day first.
// @Tags        Quota
// @Produce     json
// @Param       X-User-ID header string true  "Authenticated user id"
// @Param       limit     query  int    false "Number of days (default: 30)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quota/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequest(err))
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
