package workspace

import "errors"

var (
	ErrNotFound        = errors.New("entity not found")
	ErrForbidden       = errors.New("entity belongs to another user")
	ErrInvalidPayload  = errors.New("invalid action payload")
	ErrUnsupportedKind = errors.New("unsupported action kind")
	ErrDuplicateName   = errors.New("category name already exists")
)
