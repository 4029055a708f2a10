package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/response"
)

// badRequest keeps unsupported kinds on their own code and reports the rest as 400.
func (h *handler) badRequest(c *gin.Context, err error) {
	if errors.Is(err, workspace.ErrUnsupportedKind) {
		response.Error(c, h.mapError(err))
		return
	}
	response.Error(c, pkgErrors.NewBadRequest(err))
}

// List godoc
// @Summary     List workspace entities
// @Description Returns the caller's tasks, notes, reminders or categories, newest first.
// @Tags        Workspace
// @Produce     json
// @Param       X-User-ID header string true  "Authenticated user id"
// @Param       kind      path   string true  "tasks | notes | reminders | categories"
// @Param       limit     query  int    false "Page size (default: 50)"
// @Param       offset    query  int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workspace/{kind} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	kind, req, err := h.processListReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput(kind))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a workspace entity
// @Description Partially updates one of the caller's entities; omitted fields keep their value.
// @Tags        Workspace
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       kind      path   string true "tasks | notes | reminders | categories"
// @Param       id        path   string true "Entity ID"
// @Param       body      body   object true "Partial payload of the kind's shape"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - category name exists"
// @Router      /api/v1/workspace/{kind}/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a workspace entity
// @Tags        Workspace
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       kind      path   string true "tasks | notes | reminders | categories"
// @Param       id        path   string true "Entity ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/workspace/{kind}/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	kind, err := h.processKind(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, workspace.DeleteInput{Kind: kind, ID: c.Param("id")}); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
