package http

import (
	"errors"
	"net/http"

	"chat-assistant/internal/notification"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/sqldb"
)

const (
	codeNotificationNotFound = 130001
	codeForbidden            = 130002
)

var (
	errNotificationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, codeNotificationNotFound, "notification not found")
	errForbidden            = pkgErrors.NewHTTPError(http.StatusForbidden, codeForbidden, "notification belongs to another user")
)

// mapError translates notification use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return errNotificationNotFound
	case errors.Is(err, notification.ErrForbidden):
		return errForbidden
	case errors.Is(err, sqldb.ErrStorageContention):
		return pkgErrors.ErrStorageContention
	default:
		return pkgErrors.ErrInternalServerError
	}
}
