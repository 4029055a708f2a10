package http

import (
	"errors"
	"net/http"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/quota"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/sqldb"
)

const (
	codeInteractionNotFound  = 120001
	codeForbidden            = 120002
	codeInvalidState         = 120003
	codeInterpretationFailed = 120004
	codePartialApply         = 120005
	codeEmptyInput           = 120006
	codeQuotaExceeded        = 110001
)

var (
	errInteractionNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, codeInteractionNotFound, "interaction not found")
	errForbidden            = pkgErrors.NewHTTPError(http.StatusForbidden, codeForbidden, "interaction belongs to another user")
	errInvalidState         = pkgErrors.NewHTTPError(http.StatusConflict, codeInvalidState, "interaction was already decided")
	errInterpretationFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, codeInterpretationFailed, "could not interpret the request")
	errPartialApply         = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, codePartialApply, "proposed actions could not be applied")
	errEmptyInput           = pkgErrors.NewHTTPError(http.StatusBadRequest, codeEmptyInput, "text is required")
	errQuotaExceeded        = pkgErrors.NewHTTPError(http.StatusTooManyRequests, codeQuotaExceeded, "daily AI quota exceeded")
)

// mapError translates interaction use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, interaction.ErrInteractionNotFound):
		return errInteractionNotFound
	case errors.Is(err, interaction.ErrForbidden):
		return errForbidden
	case errors.Is(err, interaction.ErrInvalidState):
		return errInvalidState
	case errors.Is(err, interaction.ErrInterpretationFailed):
		return errInterpretationFailed
	case errors.Is(err, interaction.ErrPartialApply):
		return errPartialApply
	case errors.Is(err, interaction.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, quota.ErrQuotaExceeded):
		return errQuotaExceeded
	case errors.Is(err, sqldb.ErrStorageContention):
		return pkgErrors.ErrStorageContention
	default:
		return pkgErrors.ErrInternalServerError
	}
}
