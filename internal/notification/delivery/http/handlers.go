package http

import (
	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Returns the caller's notifications, newest first.
// @Tags        Notifications
// @Produce     json
// @Param       X-User-ID   header string true  "Authenticated user id"
// @Param       unread_only query  bool   false "Only unread notifications"
// @Param       limit       query  int    false "Page size (default: 50)"
// @Param       offset      query  int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequest(err))
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// UnreadCount godoc
// @Summary     Unread notification count
// @Tags        Notifications
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Success     200 {object} unreadCountResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications/unread-count [GET]
func (h *handler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	n, err := h.uc.CountUnread(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.CountUnread: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, unreadCountResp{Unread: n})
}

// MarkRead godoc
// @Summary     Mark a notification read
// @Tags        Notifications
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       id        path   string true "Notification id"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	var req markReadReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequest(err))
		return
	}

	if err := h.uc.MarkRead(ctx, sc, req.ID); err != nil {
		h.l.Warnf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
