package quota

import "errors"

var (
	ErrQuotaExceeded = errors.New("daily AI quota exceeded")
)
