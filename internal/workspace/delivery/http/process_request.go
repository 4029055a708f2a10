package http

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
)

var errEmptyBody = errors.New("request body is required")

func (h *handler) processKind(c *gin.Context) (model.ActionKind, error) {
	kind, ok := kindsByPath[c.Param("kind")]
	if !ok {
		return "", workspace.ErrUnsupportedKind
	}
	return kind, nil
}

func (h *handler) processListReq(c *gin.Context) (model.ActionKind, listReq, error) {
	var req listReq
	kind, err := h.processKind(c)
	if err != nil {
		return "", req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", req, err
	}
	return kind, req, nil
}

// processUpdateReq reads the raw JSON object body; its shape is checked per kind by the use case.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	kind, err := h.processKind(c)
	if err != nil {
		return updateReq{}, err
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return updateReq{}, err
	}
	if len(body) == 0 {
		return updateReq{}, errEmptyBody
	}
	if !json.Valid(body) {
		return updateReq{}, errors.New("request body is not valid JSON")
	}
	return updateReq{Kind: kind, ID: c.Param("id"), Payload: body}, nil
}
