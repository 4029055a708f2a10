package http

import (
	"errors"
	"net/http"

	"chat-assistant/internal/workspace"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/sqldb"
)

const (
	codeNotFound        = 140001
	codeForbidden       = 140002
	codeInvalidPayload  = 140003
	codeUnsupportedKind = 140004
	codeDuplicateName   = 140005
)

var (
	errNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, codeNotFound, "entity not found")
	errForbidden       = pkgErrors.NewHTTPError(http.StatusForbidden, codeForbidden, "entity belongs to another user")
	errUnsupportedKind = pkgErrors.NewHTTPError(http.StatusBadRequest, codeUnsupportedKind, "unsupported entity kind")
	errDuplicateName   = pkgErrors.NewHTTPError(http.StatusConflict, codeDuplicateName, "category name already exists")
)

// mapError translates workspace use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		return errNotFound
	case errors.Is(err, workspace.ErrForbidden):
		return errForbidden
	case errors.Is(err, workspace.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, codeInvalidPayload, err.Error())
	case errors.Is(err, workspace.ErrUnsupportedKind):
		return errUnsupportedKind
	case errors.Is(err, workspace.ErrDuplicateName):
		return errDuplicateName
	case errors.Is(err, sqldb.ErrStorageContention):
		return pkgErrors.ErrStorageContention
	default:
		return pkgErrors.ErrInternalServerError
	}
}
