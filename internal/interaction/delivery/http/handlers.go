package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/model"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/response"
)

// Submit godoc
// @Summary     Submit text for interpretation
// @Description Interprets free text into proposed actions under the daily AI quota.
// @Description The result is a pending interaction unless auto-approve applied it.
// @Tags        Interactions
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Authenticated user id"
// @Param       body      body   submitReq true "User text"
// @Success     200 {object} interactionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Auto-approve could not apply the actions"
// @Failure     429 {object} response.Resp "Quota exceeded or rate limited"
// @Failure     502 {object} response.Resp "Interpretation failed"
// @Router      /api/v1/interactions [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequest(err))
		return
	}

	it, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Submit", err)
		return
	}

	response.OK(c, h.newInteractionResp(it))
}

// List godoc
// @Summary     List interactions
// @Tags        Interactions
// @Produce     json
// @Param       X-User-ID header string true  "Authenticated user id"
// @Param       status    query  string false "pending | approved | rejected | applied | failed"
// @Param       limit     query  int    false "Page size (default: 50)"
// @Param       offset    query  int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/interactions [GET]
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
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one interaction
// @Tags        Interactions
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       id        path   string true "Interaction id"
// @Success     200 {object} interactionResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/interactions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	h.byID(c, "uc.Detail", h.uc.Detail)
}

// Approve godoc
// @Summary     Approve a pending interaction
// @Description Applies every proposed action atomically. On failure nothing is kept and the
// @Description per-action outcomes are returned in errors.
// @Tags        Interactions
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       id        path   string true "Interaction id"
// @Success     200 {object} interactionResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already decided"
// @Failure     422 {object} response.Resp{errors=partialApplyResp} "Actions rolled back"
// @Router      /api/v1/interactions/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	h.byID(c, "uc.Approve", h.uc.Approve)
}

// Reject godoc
// @Summary     Reject a pending interaction
// @Tags        Interactions
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user id"
// @Param       id        path   string true "Interaction id"
// @Success     200 {object} interactionResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already decided"
// @Router      /api/v1/interactions/{id}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	h.byID(c, "uc.Reject", h.uc.Reject)
}

func (h *handler) byID(c *gin.Context, op string, fn func(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error)) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequest(err))
		return
	}

	it, err := fn(ctx, sc, req.ID)
	if err != nil {
		h.respondError(c, op, err)
		return
	}

	response.OK(c, h.newInteractionResp(it))
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var partial *interaction.PartialApplyError
	if errors.As(err, &partial) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.ErrorWithData(c, errPartialApply, partialApplyResp{
			InteractionID: partial.InteractionID,
			Results:       newResultsResp(partial.Results),
		})
		return
	}

	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		h.l.Errorf(ctx, "%s: %v", op, err)
	} else {
		h.l.Warnf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped)
}
