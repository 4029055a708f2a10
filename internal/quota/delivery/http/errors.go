package http

import (
	"errors"
	"net/http"

	"chat-assistant/internal/quota"
	pkgErrors "chat-assistant/pkg/errors"
	"chat-assistant/pkg/sqldb"
)

const codeQuotaExceeded = 110001

var errQuotaExceeded = pkgErrors.NewHTTPError(http.StatusTooManyRequests, codeQuotaExceeded, "daily AI quota exceeded")

// mapError translates quota use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quota.ErrQuotaExceeded):
		return errQuotaExceeded
	case errors.Is(err, sqldb.ErrStorageContention):
		return pkgErrors.ErrStorageContention
	default:
		return pkgErrors.ErrInternalServerError
	}
}
